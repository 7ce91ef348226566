package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY   contextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY contextKey = "session_data"
)

const (
	MongoCollectionUsers     = "users"
	MongoCollectionHospitals = "hospitals"
	MongoCollectionDoctors   = "doctors"
	MongoCollectionBrokers   = "brokers"
	MongoCollectionPatients  = "patients"
	MongoCollectionTests     = "tests"
	MongoCollectionBills     = "bills"
)

const (
	QueueBillingEvents = "billing_events_queue"

	EventBillCreated = "bill.created"
	EventBillUpdated = "bill.updated"
)

// ReceiptFileExtension is appended to the bill number when archiving
// the issued bill document to object storage.
const ReceiptFileExtension = ".json"
