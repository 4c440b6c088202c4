package purchase

import (
	"babel/src/events"
	"babel/src/translate"
	"babel/src/utils/config"
	"babel/src/utils/eth"
	"babel/src/utils/model"
	"babel/src/utils/monitoring"
	monitor_purchaser "babel/src/utils/monitoring/purchaser"
	"babel/src/utils/task"
)

type Controller struct {
	*task.Task
}

func NewController(config *config.Config) (self *Controller, err error) {
	self = new(Controller)
	self.Task = task.NewTask(config, "purchase")

	// SQL database
	db, err := model.NewConnection(self.Ctx, config, "purchase")
	if err != nil {
		return
	}

	// Monitoring
	monitor := monitor_purchaser.NewMonitor()
	monitoringServer := monitoring.NewServer(config).
		WithMonitor(monitor)

	// Eth client
	ethClient, err := eth.NewClient(&config.Contract)
	if err != nil {
		self.Log.WithError(err).Error("Could not get ETH client")
		return
	}

	// Translation provider
	translator := translate.NewClient(&config.Translator)

	// Content records
	store := NewStore(db)

	// Purchase events fan out through Redis when enabled
	eventsChannel := make(chan *Event, config.Purchaser.EventChannelSize)
	publisher := events.NewPublisher[*Event](config, "publisher").
		WithInputChannel(eventsChannel).
		WithChannelName(config.Purchaser.EventChannelName).
		WithMonitor(monitor)

	// Runs the purchase flow
	orchestrator := NewOrchestrator(config).
		WithChainClient(ethClient).
		WithTranslator(translator).
		WithStore(store).
		WithMonitor(monitor)
	if config.Redis.Enabled {
		orchestrator = orchestrator.WithEventsChannel(eventsChannel)
	}

	// Marketplace REST API
	server := NewServer(config).
		WithOrchestrator(orchestrator).
		WithStore(store)

	// Setup everything, will start upon calling Controller.Start()
	self.Task.
		WithSubtask(orchestrator.Task).
		WithSubtask(server.Task).
		WithSubtask(monitor.Task).
		WithSubtask(monitoringServer.Task).
		WithConditionalSubtask(config.Redis.Enabled, publisher.Task).
		WithOnAfterStop(func() {
			close(eventsChannel)
		})
	return
}
