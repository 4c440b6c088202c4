package report

type Report struct {
	Run            *RunReport            `json:"run,omitempty"`
	Purchaser      *PurchaserReport      `json:"purchaser,omitempty"`
	RedisPublisher *RedisPublisherReport `json:"redis_publisher,omitempty"`
}
