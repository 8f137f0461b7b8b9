package response

// Response message and format constants.
const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "something went wrong, please try again later"

	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
