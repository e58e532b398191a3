package constants

const (
	//分頁
	DefaultPaging             int = 1
	DefaultProductPagingSize  int = 12
	DefaultMyOrderPagingSize  int = 10
	DefaultAdminPagingSize    int = 20
	MaxPagingSize             int = 100
	TopProductsLimit          int = 8
	FeaturedProductsLimit     int = 12
	DashboardTopProductsLimit int = 5
	DashboardRecentOrderLimit int = 10
	StatsRecentOrderLimit     int = 5
	UserDetailOrderLimit      int = 10
	LowStockThreshold         int = 10
)

const (
	OrderNumberPrefix     = "UZ"
	DefaultCountry        = "Uzbekistan"
	DefaultProductImage   = "/images/default-product.png"
	MaxUploadSize         = 5 << 20
	UploadFormField       = "image"
	UploadFilePrefix      = "product-"
	EstimatedDeliveryDays = 3
)

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
	AuthorizationErrorKey   ContextKey = "authorization_error"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)

type RequestID string

const (
	RequestIDKey    RequestID = "request_id"
	RequestIDHeader           = "X-Request-Id"
)
