package config

const (
	DefaultContractDays             = 30
	DefaultRejectionReason          = "Bid not selected"
	DefaultCancellationReason       = "Rental request rejected by vendor"
	DefaultRequestedDays            = 1
	DefaultReconcilerSchedule       = "0 */5 * * * *"
	DefaultReconcilerBatchSize      = 50
	DefaultReconcilerMaxAttempt     = 10
	DefaultWebsocketPongWaitSeconds = 30
	DefaultNotificationsTopic       = "sitepro.notifications"
)

// ContractDays returns the contract length used when a bid has no end date.
func (c *Config) ContractDays() int {
	if c.Lifecycle.ContractDefaultDays <= 0 {
		return DefaultContractDays
	}

	return c.Lifecycle.ContractDefaultDays
}

func (c *Config) RejectionReason() string {
	if c.Lifecycle.DefaultRejectionReason == "" {
		return DefaultRejectionReason
	}

	return c.Lifecycle.DefaultRejectionReason
}

func (c *Config) CancellationReason() string {
	if c.Lifecycle.DefaultCancellationReason == "" {
		return DefaultCancellationReason
	}

	return c.Lifecycle.DefaultCancellationReason
}

func (c *Config) RequestedDays() int {
	if c.Lifecycle.DefaultRequestedDays <= 0 {
		return DefaultRequestedDays
	}

	return c.Lifecycle.DefaultRequestedDays
}

func (c *Config) ReconcilerSchedule() string {
	if c.Reconciler.Schedule == "" {
		return DefaultReconcilerSchedule
	}

	return c.Reconciler.Schedule
}

func (c *Config) ReconcilerBatchSize() int {
	if c.Reconciler.BatchSize <= 0 {
		return DefaultReconcilerBatchSize
	}

	return c.Reconciler.BatchSize
}

func (c *Config) ReconcilerMaxAttempt() int {
	if c.Reconciler.MaxAttempt <= 0 {
		return DefaultReconcilerMaxAttempt
	}

	return c.Reconciler.MaxAttempt
}

func (c *Config) PongWaitSeconds() int {
	if c.Websocket.PongWaitSeconds <= 0 {
		return DefaultWebsocketPongWaitSeconds
	}

	return c.Websocket.PongWaitSeconds
}

func (c *Config) NotificationsTopic() string {
	if c.Kafka.Topic.Notifications == "" {
		return DefaultNotificationsTopic
	}

	return c.Kafka.Topic.Notifications
}
