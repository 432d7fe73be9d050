package constants

// Обменник и ключи маршрутизации событий сайта
const (
	ExchangeSiteEvents = "realhouse.site.events"

	RoutingKeyInquiryCreated = "site.inquiry.created"
)

// Префикс id для JSON-LD, которые страница добавляет и убирает сама
const DynamicSchemaPrefix = "dynamic-"

// Заголовок, в котором trace_id передается между сайтом и API
const TraceIDHeader = "X-Trace-ID"
