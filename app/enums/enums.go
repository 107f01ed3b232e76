// Package enums provides type-safe enumeration types for the dashboard client.
//
// The enum types are defined as unexported integer types (e.g., jobKind int) in this file,
// and the go:generate directives invoke the go-pkgz/enum generator to create the exported
// struct types with String, MarshalText/UnmarshalText and Parse functions in *_enum.go files.
//
// Usage:
//
//	kind := enums.JobKindNews
//	fmt.Println(kind.String()) // "news"
//
//	parsed, err := enums.ParseJobKind("classified")
//	if err != nil {
//	    // handle invalid input
//	}
//
// To regenerate the enum types after modifications:
//
//	go generate ./app/enums
//
// Note: The unexported type definitions below are only used by the generator.
// All actual code should use the generated exported types.
package enums

//go:generate go run github.com/go-pkgz/enum@latest -type listName -lower
//go:generate go run github.com/go-pkgz/enum@latest -type listing -lower
//go:generate go run github.com/go-pkgz/enum@latest -type jobKind -lower
//go:generate go run github.com/go-pkgz/enum@latest -type refreshMode -lower
//go:generate go run github.com/go-pkgz/enum@latest -type successMode -lower
//go:generate go run github.com/go-pkgz/enum@latest -type triggerState -lower
//go:generate go run github.com/go-pkgz/enum@latest -type noticeLevel -lower

// listName names one of the two scrape-target URL lists.
type listName int

const (
	listNameProperty listName = iota
	listNameNews
)

// listing names one of the rendered listings.
type listing int

const (
	listingProperties listing = iota
	listingNews
)

// jobKind is a backend-triggered scraping action.
type jobKind int

const (
	jobKindClassified jobKind = iota
	jobKindNews
	jobKindFacebook
)

// refreshMode is the refresh strategy applied after a successful job start.
type refreshMode int

const (
	refreshModeImmediate refreshMode = iota // render the listing carried by the response
	refreshModePoll                         // fetch the listing after a delay
	refreshModeReload                       // reload the whole page after a delay
)

// successMode is how a 2xx job start response is told from a failure.
type successMode int

const (
	successModeIndicator successMode = iota // body must carry status:"success" or success:true
	successModeHTTP                         // any 2xx without an explicit error flag
)

// triggerState is the state of a job trigger control.
type triggerState int

const (
	triggerStateIdle triggerState = iota
	triggerStateTriggering
	triggerStateSucceeded
	triggerStateFailed
)

// noticeLevel is the level of a user-visible notice.
type noticeLevel int

const (
	noticeLevelSuccess noticeLevel = iota
	noticeLevelError
	noticeLevelInfo
)
