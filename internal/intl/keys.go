package intl

// Message keys.
const (
	BlocklistsTitle      = "blocklists_title"
	AllowlistsTitle      = "allowlists_title"
	NoBlocklistAdded     = "no_blocklist_added"
	NoAllowlistAdded     = "no_allowlist_added"
	ListConfirmDelete    = "list_confirm_delete"
	EnabledTableHeader   = "enabled_table_header"
	NameLabel            = "name_label"
	URLLabel             = "url_label"
	RulesLabel           = "rules_label"
	LastUpdatedLabel     = "last_updated_label"
	ActionsLabel         = "actions_label"
	ChecksumTableHeader  = "checksum_table_header"
	BlocklistsAdd        = "blocklists_add"
	BlocklistEdit        = "blocklist_edit"
	BlocklistsAddList    = "blocklists_add_list"
	AllowlistsAdd        = "allowlists_add"
	AllowlistEdit        = "allowlist_edit"
	AddBlocklist         = "add_blocklist"
	AddAllowlist         = "add_allowlist"
	CheckUpdatesBtn      = "check_updates_btn"
	FiltersAndHostsHint  = "filters_and_hosts_hint"
	BlocklistAddFromList = "blocklist_add_from_list"
	BlocklistAddManual   = "blocklist_add_manual"
	EnterNameHint        = "enter_name_hint"
	EnterURLOrPathHint   = "enter_url_or_path_hint"
	EnterValidBlocklist  = "enter_valid_blocklist"
	EnterValidAllowlist  = "enter_valid_allowlist"
	FormErrorRequired    = "form_error_required"
	FormErrorURLOrPath   = "form_error_url_or_path_format"
	CancelBtn            = "cancel_btn"
	SaveBtn              = "save_btn"
	EditBtn              = "edit_table_action"
	DeleteBtn            = "delete_table_action"
	FilterAdded          = "filter_added_successfully"
	FilterRemoved        = "filter_removed_successfully"
	FilterUpdated        = "filter_updated"
	FiltersUpdated       = "list_updated"
	FiltersRemoved       = "lists_removed"
	LoadingText          = "loading_table_status"
	NoDataAvailable      = "no_data_available"
	PreviousBtn          = "previous_btn"
	NextBtn              = "next_btn"
	PageFooterText       = "page_table_footer_text"
	RowsFooterText       = "rows_table_footer_text"
	YesBtn               = "yes_btn"
	NoBtn                = "no_btn"
)
