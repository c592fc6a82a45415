// Package events publishes a DocumentMutated record to Kafka (or Redpanda)
// whenever a command changes a stored document.
//
// The Publisher is registered on the API client as a command hook:
//
//	producer, err := kafka.NewProducer(kafka.GetBrokers(cfg.Events))
//	...
//	client, err := cloud.NewClient(cfg.Cloud,
//		cloud.WithHooks(events.NewPublisher(producer, kafka.GetTopic(cfg.Events), logger)))
package events
