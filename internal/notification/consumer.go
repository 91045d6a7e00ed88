package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/iic-bit/IIC-Backend/utils"
)

// StartKafkaConsumer runs the registration-topic consumer loop in the
// background. A nil reader (Kafka unconfigured) is a no-op.
func StartKafkaConsumer(svc Service) {
	reader := utils.NewRegistrationReader("notification-service")
	if reader == nil {
		log.Println("ℹ️ Kafka not configured, registration consumer disabled")
		return
	}

	go func() {
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("❌ Kafka read error, stopping consumer: %v", err)
				return
			}

			var evt utils.RegistrationEvent
			if err := json.Unmarshal(msg.Value, &evt); err != nil {
				log.Printf("⚠️ Skipping malformed registration event: %v", err)
				continue
			}

			if err := svc.HandleRegistration(context.Background(), evt); err != nil {
				log.Printf("⚠️ Failed to handle registration event for group %s: %v", evt.GroupID, err)
			}
		}
	}()

	log.Println("✅ Registration event consumer started")
}
