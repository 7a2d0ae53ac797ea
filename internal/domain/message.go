package domain

// Константы по умолчанию для топика и consumer group (переопределяются конфигом).
const (
	DefaultTopic   = "location-update-topic"
	DefaultGroupID = "location-group"
)

// Message — сообщение, доставленное брокером консьюмеру. Драйверы без партиций и offset оставляют их нулевыми.
type Message struct {
	Topic     string
	Partition int
	Offset    int64
	Key       []byte
	Value     []byte
}
