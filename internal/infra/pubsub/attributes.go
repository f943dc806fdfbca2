package pubsub

import (
	"strconv"

	"coffeeshop/internal/domain/service"
)

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": string(event.Type),
		"order_id":   strconv.FormatInt(event.OrderID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.ServiceType != "" {
		attributes["service_type"] = event.ServiceType
	}

	return attributes
}
