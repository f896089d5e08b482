package models

const (
	// Storage record keys. These match the records written by earlier
	// versions of the app, so existing data files stay readable.
	ReservationsKey = "smart-reservations"
	SessionUserKey  = "smart-user-obj"

	EventReservationCreated = "reservation_created"
	EventReservationDeleted = "reservation_deleted"

	EventSinkNone    = "none"
	EventSinkConsole = "console"
	EventSinkFile    = "file"
	EventSinkKafka   = "kafka"

	ExportFormatJSON    = "json"
	ExportFormatCSV     = "csv"
	ExportFormatParquet = "parquet"

	ExportDestinationLocal = "local"
	ExportDestinationS3    = "s3"
)
