package schema

// Visibility mirrors the form editor's field visibility setting.
type Visibility string

const (
	VisibilityVisible        Visibility = "visible"
	VisibilityHidden         Visibility = "hidden"
	VisibilityAdministrative Visibility = "administrative"
)

// Conditional-logic logic types and action types as the API spells them.
const (
	LogicTypeAll = "all"
	LogicTypeAny = "any"

	ActionTypeShow = "show"
	ActionTypeHide = "hide"
)

// Rule operators supported by conditional logic blocks.
const (
	OperatorIs          = "is"
	OperatorIsNot       = "isnot"
	OperatorGreaterThan = "greater_than"
	OperatorLessThan    = "less_than"
	OperatorContains    = "contains"
	OperatorStartsWith  = "starts_with"
	OperatorEndsWith    = "ends_with"
)

// Choice is one selectable option of a choice-bearing field. For list fields
// with columns enabled the choices double as column definitions.
type Choice struct {
	Text       string `json:"text"`
	Value      string `json:"value"`
	IsSelected bool   `json:"isSelected,omitempty"`
	Price      string `json:"price,omitempty"`
}

// Input is a sub-input of a composite field such as name or address. Sub-input
// ids arrive as "<fieldId>.<n>" from the API.
type Input struct {
	ID       FieldID  `json:"id"`
	Label    string   `json:"label"`
	Name     string   `json:"name,omitempty"`
	IsHidden bool     `json:"isHidden,omitempty"`
	Type     string   `json:"inputType,omitempty"`
	Choices  []Choice `json:"choices,omitempty"`
}

// Rule is a single conditional-logic comparison against another field's
// current value.
type Rule struct {
	FieldID  FieldID `json:"fieldId"`
	Operator string  `json:"operator"`
	Value    string  `json:"value"`
}

// ConditionalLogic controls a field's visibility based on other fields.
type ConditionalLogic struct {
	Enabled    bool   `json:"enabled"`
	ActionType string `json:"actionType,omitempty"`
	LogicType  string `json:"logicType,omitempty"`
	Rules      []Rule `json:"rules,omitempty"`
}

// Field models one question of a form. Type is an open string tag, not a
// closed enum: unknown types resolve through the renderer registry fallback.
type Field struct {
	ID           FieldID           `json:"id"`
	FormID       FieldID           `json:"formId,omitempty"`
	Type         string            `json:"type"`
	Label        string            `json:"label"`
	AdminLabel   string            `json:"adminLabel,omitempty"`
	IsRequired   bool              `json:"isRequired,omitempty"`
	Visibility   Visibility        `json:"visibility,omitempty"`
	Description  string            `json:"description,omitempty"`
	Placeholder  string            `json:"placeholder,omitempty"`
	DefaultValue string            `json:"defaultValue,omitempty"`
	ErrorMessage string            `json:"errorMessage,omitempty"`
	Choices      []Choice          `json:"choices,omitempty"`
	Inputs       []Input           `json:"inputs,omitempty"`
	Conditional  *ConditionalLogic `json:"conditionalLogic,omitempty"`

	RangeMin  string `json:"rangeMin,omitempty"`
	RangeMax  string `json:"rangeMax,omitempty"`
	MaxLength string `json:"maxLength,omitempty"`

	// Type-specific settings.
	CheckboxLabel     string `json:"checkboxLabel,omitempty"` // consent
	DateFormat        string `json:"dateFormat,omitempty"`
	TimeFormat        string `json:"timeFormat,omitempty"`
	PhoneFormat       string `json:"phoneFormat,omitempty"`
	NameFormat        string `json:"nameFormat,omitempty"`
	AddressType       string `json:"addressType,omitempty"`
	InputType         string `json:"inputType,omitempty"`
	EnableColumns     bool   `json:"enableColumns,omitempty"` // list
	MaxRows           int    `json:"maxRows,omitempty"`
	EnableOtherChoice bool   `json:"enableOtherChoice,omitempty"`
}

// Button is the form's submit button definition.
type Button struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// Confirmation describes what the form shows after a successful submission.
type Confirmation struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
	Type        string `json:"type,omitempty"`
	Message     string `json:"message,omitempty"`
	URL         string `json:"url,omitempty"`
	PageID      string `json:"pageId,omitempty"`
	QueryString string `json:"queryString,omitempty"`
}

// Notification is carried through for completeness; the engine never sends
// notifications itself.
type Notification struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	IsActive bool   `json:"isActive,omitempty"`
	Event    string `json:"event,omitempty"`
	To       string `json:"to,omitempty"`
	ToType   string `json:"toType,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Form is a complete form document as returned by GET /forms/{id}. Immutable
// once fetched; the controller owns it for the lifetime of a session.
type Form struct {
	ID            FieldID                 `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description,omitempty"`
	Button        Button                  `json:"button"`
	Fields        []Field                 `json:"fields"`
	Version       string                  `json:"version,omitempty"`
	IsActive      FlexBool                `json:"is_active,omitempty"`
	IsTrash       FlexBool                `json:"is_trash,omitempty"`
	DateCreated   string                  `json:"date_created,omitempty"`
	Confirmations map[string]Confirmation `json:"confirmations,omitempty"`
	Notifications map[string]Notification `json:"notifications,omitempty"`
}

// SubmissionResult is the response shape shared by the validation and
// submission endpoints.
type SubmissionResult struct {
	IsValid              bool     `json:"is_valid"`
	ValidationMessages   Messages `json:"validation_messages,omitempty"`
	PageNumber           int      `json:"page_number,omitempty"`
	SourcePageNumber     int      `json:"source_page_number,omitempty"`
	ConfirmationMessage  string   `json:"confirmation_message,omitempty"`
	ConfirmationType     string   `json:"confirmation_type,omitempty"`
	ConfirmationRedirect string   `json:"confirmation_redirect,omitempty"`
	EntryID              int      `json:"entry_id,omitempty"`
	ResumeToken          string   `json:"resume_token,omitempty"`
}
