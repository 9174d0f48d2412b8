package config

import "time"

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const AppName = "Go Datepicker"

// -----------------------------------------------------------------------------
// Selection Modes & Calendar Systems
// -----------------------------------------------------------------------------

const (
	ModeSingle   = "single"
	ModeRange    = "range"
	ModeMultiple = "multiple"

	// Calendar tags follow the Unicode "ca" keyword values.
	CalendarGregory = "gregory"
	CalendarIslamic = "islamic"
	CalendarJalali  = "jalali"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultMode           = ModeSingle
	DefaultCalendar       = CalendarGregory
	DefaultLocale         = "en"
	DefaultNumerals       = "latn"
	DefaultFirstDayOfWeek = 0

	// DefaultTimeZone is empty: the picker then uses the process local zone.
	DefaultTimeZone = ""
)

// -----------------------------------------------------------------------------
// Grid Geometry
// -----------------------------------------------------------------------------

const (
	DaysPerWeek     = 7
	MonthsPerYear   = 12
	GridCellsShort  = 35 // Five rows
	GridCellsLong   = 42 // Six rows
	MaxDaysPerMonth = 31

	// HijriLongestMonth is the longest lunation in the Umm al-Qura table.
	HijriLongestMonth = 30

	// HijriShortestMonth is the shortest lunation in the Umm al-Qura table.
	HijriShortestMonth = 28

	// Umm al-Qura table coverage (1937-03-14 to 2077-11-16).
	HijriMinYear = 1356
	HijriMaxYear = 1500
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	DateFormatRFC3339 = time.RFC3339
	DateFormatMinute  = "2006-01-02T15:04"
	DateFormatDay     = "2006-01-02"

	// UnixEpochJulianDay is the Julian day number of 1970-01-01.
	UnixEpochJulianDay = 2440588
	SecondsPerDay      = 24 * 60 * 60
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// TKeyMonthFormat expects the calendar tag and the 0-based month.
	TKeyMonthFormat = "month_%s_%d"
	// TKeyWeekdayFormat expects the weekday (0=Sunday).
	TKeyWeekdayFormat      = "weekday_%d"
	TKeyWeekdayShortFormat = "weekday_short_%d"
	// TKeyMonthTitle requires Month and Year template data.
	TKeyMonthTitle = "month_title"

	LocalesDir    = "locales"
	LocalePrefix  = "active."
	LocaleExt     = ".json"
	LocaleFileExt = "json"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//" + AppName + "//Export//EN"
	ICalScale   = "GREGORIAN"
	ICalMethod  = "PUBLISH"
	ICalDomain  = "go-datepicker"

	PropUID     = "UID"
	PropSummary = "SUMMARY"
	PropDTStart = "DTSTART"
	PropDTEnd   = "DTEND"
	PropDTStamp = "DTSTAMP"
	PropVersion = "VERSION"
	PropProdid  = "PRODID"
	PropScale   = "CALSCALE"
	PropMethod  = "METHOD"

	FormatUID       = "%s-%d@%s"
	FormatUIDDate   = "20060102"
	FallbackSummary = "Selected date"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrMsgInvalidDate      = "invalid date"
	ErrMsgUnsupportedCal   = "unsupported calendar system"
	ErrMsgOutOfTable       = "date outside the Umm al-Qura table"
	ErrMsgOutOfRangeSelect = "selection violates the range day-count bounds"
	ErrMsgInvalidOptions   = "invalid picker options"
	ErrMsgOptionsDecode    = "failed to decode picker options"
	ErrMsgTimeZone         = "unknown time zone"
	ErrMsgLocale           = "invalid locale tag"
	ErrMsgNumerals         = "unsupported numeral system"
	ErrMsgRangeBounds      = "max range length is lower than min"
	ErrMsgMonthRange       = "month out of range"
	ErrMsgDayRange         = "day out of range"
	ErrMsgJalaliYear       = "jalali year out of supported range"
	ErrMsgLocalesAccess    = "failed to access embedded locales"
	ErrMsgLocaleLoad       = "failed to load locale file"
	ErrMsgICalEncode       = "failed to encode iCalendar data"
	ErrMsgEmptySelection   = "selection holds no dates"
	ErrMsgTimeDisabled     = "time picking is disabled"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgPickerReady     = "Picker configured"
	MsgGridBuilt       = "Month grid built"
	MsgGridEdge        = "Outside days beyond calendar tables left empty"
	MsgRangeRestart    = "Range restarted at picked date"
	MsgSelectionChange = "Selection changed"
	MsgMultiLimit      = "Multiple selection limit reached"
	MsgCalRegistered   = "Calendar system registered"
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgExported        = "Selection exported"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyCalendar  = "calendar"
	LogKeyMode      = "mode"
	LogKeyLocale    = "locale"
	LogKeyTimeZone  = "time_zone"
	LogKeyYear      = "year"
	LogKeyMonth     = "month"
	LogKeyCells     = "cells"
	LogKeyOffset    = "offset"
	LogKeyDays      = "days"
	LogKeyStart     = "start"
	LogKeyEnd       = "end"
	LogKeyPicked    = "picked"
	LogKeyChange    = "change"
	LogKeyCount     = "count"
	LogKeyLang      = "lang"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyEvents    = "events"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompPicker    = "picker"
	CompCalendar  = "calendar"
	CompGrid      = "grid"
	CompSelection = "selection"
	CompLocale    = "locale"
	CompExport    = "export"
)
