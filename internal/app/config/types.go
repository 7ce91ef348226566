package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port          string
		Host          string
		Username      string
		Password      string
		ReceiptBucket string
		UseSSL        bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                     string
		Port                    string
		Timezone                string
		EndpointPrefix          string
		MaxRequests             int
		ShutdownTimeout         int
		SessionTTLInHour        int
		BillNumberMaxRetries    int
		RequestTimeoutInSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
