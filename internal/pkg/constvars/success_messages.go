package constvars

const (
	LoginSuccess = "login success"

	BillGeneratedSuccess = "bill generated successfully"
	BillUpdatedSuccess   = "bill updated successfully"
	BillsFetchedSuccess  = "bills fetched successfully"
	BillFetchedSuccess   = "bill fetched successfully"

	DoctorCreatedSuccess   = "doctor created successfully"
	DoctorsFetchedSuccess  = "doctors fetched successfully"
	DoctorFetchedSuccess   = "doctor fetched successfully"
	BrokerCreatedSuccess   = "broker created successfully"
	BrokersFetchedSuccess  = "brokers fetched successfully"
	BrokerFetchedSuccess   = "broker fetched successfully"
	PatientCreatedSuccess  = "patient registered successfully"
	PatientsFetchedSuccess = "patients fetched successfully"
	TestCreatedSuccess     = "test created successfully"
	TestsFetchedSuccess    = "tests fetched successfully"

	ManagerCreatedSuccess   = "manager account created successfully"
	AdminCreatedSuccess     = "admin account created successfully"
	ManagersFetchedSuccess  = "managers fetched successfully"
	DashboardFetchedSuccess = "dashboard data fetched successfully"
	HospitalUpdatedSuccess  = "hospital settings updated successfully"
	HospitalFetchedSuccess  = "hospital settings fetched successfully"

	HospitalProfileFetchedSuccess = "hospital profile fetched successfully"
	UserProfileFetchSuccess = "user profile fetched successfully"
)
