package config

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "contactbook"
	AppDescription = "In-memory contact book with phones and birthdays."
	UIDNamespace   = "contactbook.tartampluch.github.com"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDescVersion  = "Show application version and exit."
	FlagDescDebug    = "Enable debug logging to stderr."
	FlagDescSeed     = "YAML seed file describing the contacts to load."
	FlagDescLang     = "Language for CLI messages (en, uk)."
	FlagDescPageSize = "Number of records per page."
	FlagDescDays     = "Look-ahead window in days."
	FlagDescName     = "Contact name."
	CmdDescList      = "Print all contacts page by page."
	CmdDescShow      = "Print a single contact."
	CmdDescUpcoming  = "Print contacts whose birthday is coming up."
	CmdDescVCard     = "Export all contacts as vCard 4.0."
	CmdDescCalendar  = "Export birthdays as an iCalendar feed."
	CmdDescDemo      = "Run the built-in demonstration scenario."
	MsgVersionOutput = "%s version %s (%s, %s)"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPageSize     = 3
	DefaultUpcomingDays = 7
	DefaultLanguage     = "en"
	PhoneDigits         = 10
	HoursPerDay         = 24
)

// SupportedLanguages defines the list of available CLI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Validation Rules (go-playground/validator tags)
// -----------------------------------------------------------------------------

const (
	RuleName  = "required,alphaunicode"
	RulePhone = "required,len=10,number"
)

// -----------------------------------------------------------------------------
// Phone Sanitization
// -----------------------------------------------------------------------------

const (
	PhonePrefixPlus = "+"
)

// PhoneStripChars lists the formatting characters removed from phone numbers.
var PhoneStripChars = []string{"(", ")", "-", " "}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

// DateLayouts is the ordered list of layouts tried when parsing a birthday.
// The first layout that parses the whole input wins.
var DateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"2-1-2006",
	"2/1/2006",
	"2.1.2006",
	"1-2-2006",
	"1/2/2006",
	"1.2.2006",
	"January 2, 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2 Jan, 2006",
	"20060102",
	"02012006",
}

const (
	DateFormatDisplay = "2006-01-02"
	DateFormatVCard   = "20060102"

	RecordFormat         = "Contact name: %s, phones: %s"
	RecordBirthdayFormat = ", birthday: %s"
	PhoneSeparator       = "; "
	PageSeparator        = "\n"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Contactbook//Engine//EN"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "contactbook"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FormatUID     = "%s-%d@%s"
	FormatSummary = "Birthday: %s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	VCardTypeCell = "cell"
)

// -----------------------------------------------------------------------------
// Error Messages
// -----------------------------------------------------------------------------

const (
	ErrInvalidName        = "invalid name: only letters are allowed"
	ErrInvalidPhone       = "invalid phone: the number must be 10 digits long"
	ErrInvalidDate        = "invalid date: please enter the correct date"
	ErrDuplicateName      = "record already exists"
	ErrPhoneNotFound      = "the phone you want to change was not found"
	ErrPhoneRemovalFailed = "the phone you want to remove was not found"
	ErrRecordNotFound     = "record not found"
	ErrVCardEncode        = "failed to encode vCard data"
	ErrVCardDecode        = "failed to decode vCard stream"
	ErrICalEncode         = "failed to encode iCalendar data"
	ErrSeedRead           = "failed to read seed file"
	ErrSeedParse          = "failed to parse seed file"
	ErrSeedContact        = "invalid contact in seed file"
	ErrLocalesAccess      = "failed to access embedded locales"
	ErrLocaleLoad         = "failed to load locale file"
	ErrAppFailed          = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgRecordAdded   = "Record added"
	MsgRecordDeleted = "Record deleted"
	MsgPageServed    = "Page served"
	MsgSkippedCard   = "Skipping invalid vCard"
	MsgImportDone    = "vCard import finished"
	MsgGenSuccess    = "Calendar generation successful"
	MsgSeedLoaded    = "Seed file loaded"
	MsgAppStarting   = "Starting application"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyPageHeader  = "page_header"       // Requires Number
	TKeyNotFound    = "contact_not_found" // Requires Name
	TKeyDaysLeft    = "days_left"         // Requires Name, Days (plural)
	TKeyNoBirthday  = "no_birthday"       // Requires Name
	TKeyNoUpcoming  = "no_upcoming"       // Requires Days
	TKeyFoundPhone  = "found_phone"       // Requires Name, Phone
	TKeyDemoDeleted = "demo_deleted"      // Requires Name
	TKeyEmptyBook   = "empty_book"
	TKeyDemoEdited  = "demo_edited"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyName      = "name"
	LogKeyCount     = "count"
	LogKeyCursor    = "cursor"
	LogKeyPageSize  = "page_size"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "imported"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompBook   = "book"
	CompEngine = "engine"
	CompSeed   = "seed"
	CompMain   = "main"
	CompI18n   = "i18n"
)
