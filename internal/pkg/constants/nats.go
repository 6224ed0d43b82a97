package constants

// NATS subjects used across services
const (
	// Location service subjects
	SubjectLocationPing    = "location.ping"    // passenger ping events
	SubjectLocationTracker = "location.tracker" // primary tracker telemetry
	SubjectLocationDerived = "location.derived" // derived location estimates

	// Ticket service subjects
	SubjectTicketIssued   = "ticket.issued"
	SubjectTicketVerified = "ticket.verified"
)

// NATS queue groups
const (
	QueueGroupLocation = "location-service"
	QueueGroupTickets  = "tickets-service"
)
