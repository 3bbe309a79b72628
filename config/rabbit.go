package config

import (
	"academyqa/global"
	"academyqa/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func initRabbit() {
	url := AppConfig.RabbitMQ.Url
	if url == "" {
		logger.Info("rabbitmq url empty, skipping rabbit init")
		return
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, question events disabled", zap.Error(err))
		return
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("Failed to open RabbitMQ channel, question events disabled", zap.Error(err))
		_ = conn.Close()
		return
	}

	qname := AppConfig.RabbitMQ.Queue
	if qname == "" {
		qname = "qa.asked"
		AppConfig.RabbitMQ.Queue = qname
	}
	if _, err := ch.QueueDeclare(qname, true, false, false, false, nil); err != nil {
		logger.Error("Failed to declare RabbitMQ queue, question events disabled", zap.String("queue", qname), zap.Error(err))
		_ = ch.Close()
		_ = conn.Close()
		return
	}

	global.RabbitConn = conn
	global.RabbitChannel = ch
	logger.Info("RabbitMQ initialized", zap.String("queue", qname))
}
