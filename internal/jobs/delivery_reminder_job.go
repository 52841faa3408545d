package jobs

import (
	"context"
	"log/slog"

	"cakery/internal/core/application/usecases/queries"
	"cakery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dateLayout is the wire format for calendar dates in reminder payloads.
const dateLayout = "2006-01-02"

// DefaultReminderSchedule fires the reminder once a day in the early evening,
// in time for the team to confirm tomorrow's deliveries.
const DefaultReminderSchedule = "0 18 * * *"

// TomorrowConfirmedOrders is the read side the reminder feeds from.
type TomorrowConfirmedOrders interface {
	Handle(ctx context.Context, query queries.GetTomorrowConfirmedOrdersQuery) ([]queries.OrderReadModel, error)
}

// DeliveryReminderJob emits one delivery_reminder event per confirmed order
// scheduled for tomorrow. Reminders share the best-effort semantics of every
// other notification: a dispatch failure is logged and the rest of the batch
// still goes out.
type DeliveryReminderJob struct {
	handler  TomorrowConfirmedOrders
	notifier ports.EventNotifier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryReminderJob creates the reminder job. An empty schedule falls
// back to DefaultReminderSchedule.
func NewDeliveryReminderJob(
	handler TomorrowConfirmedOrders,
	notifier ports.EventNotifier,
	schedule string,
	logger *slog.Logger,
) *DeliveryReminderJob {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}

	return &DeliveryReminderJob{
		handler:  handler,
		notifier: notifier,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "delivery_reminder_job"),
	}
}

// Start schedules the reminder run.
func (j *DeliveryReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery reminder job started", "schedule", j.schedule)
	return nil
}

// Run executes one reminder pass. Exposed so the schedule can be bypassed in
// tests and manual runs.
func (j *DeliveryReminderJob) Run(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewGetTomorrowConfirmedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery reminder query failed", "error", err)
		return
	}

	for _, orderRow := range orders {
		event := ports.NewNotificationEvent(ports.EventDeliveryReminder, orderRow.ID, map[string]any{
			"recipient_name":   orderRow.RecipientName,
			"phone":            orderRow.Phone,
			"address":          orderRow.Address,
			"delivery_date":    orderRow.DeliveryDate.Format(dateLayout),
			"delivery_time":    orderRow.DeliveryTime,
			"cake_description": orderRow.CakeDescription,
		})

		if err = j.notifier.Notify(ctx, event); err != nil {
			j.logger.ErrorContext(ctx, "delivery_reminder notification failed",
				"order_id", orderRow.ID, "error", err)
		}
	}

	j.logger.InfoContext(ctx, "Delivery reminder pass finished", "orders", len(orders))
}

// Stop stops the reminder job.
func (j *DeliveryReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery reminder job stopped")
}
