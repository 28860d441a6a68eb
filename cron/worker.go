package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/awalle000/Fadila-sales-system/config"
	invoiceRepo "github.com/awalle000/Fadila-sales-system/database/repository/invoice"
	"github.com/awalle000/Fadila-sales-system/models"
	"github.com/awalle000/Fadila-sales-system/services/activity"
	"github.com/awalle000/Fadila-sales-system/utils"

	"github.com/hibiken/asynq"
)

const TypeOverdueScan = "invoice:overdue_scan"

// InitOverdueWorker runs the async worker and its periodic scheduler in
// the background. The scan walks credit invoices past their due date
// with an outstanding balance and writes an OVERDUE_ALERT audit entry
// for each, for the dashboard's overdue-alert tooling to pick up.
func InitOverdueWorker(invoices invoiceRepo.InvoiceRepository, audit activity.ActivityService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOverdueScan, handleOverdueScan(invoices, audit))

	go func() {
		log.Println("[OverdueWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[OverdueWorker] worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(
		config.AppConfig.OverdueScanSpec,
		asynq.NewTask(TypeOverdueScan, nil),
	); err != nil {
		log.Printf("[OverdueWorker] failed to register schedule: %v", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[OverdueWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleOverdueScan(invoices invoiceRepo.InvoiceRepository, audit activity.ActivityService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger().Sugar()
		now := time.Now()

		overdue, err := invoices.FindOverdue(now)
		if err != nil {
			logger.Errorf("[OverdueScan] failed to query overdue invoices: %v", err)
			return err
		}
		if len(overdue) == 0 {
			logger.Info("[OverdueScan] no overdue invoices today")
			return nil
		}

		system := models.Actor{ID: "system", Name: "System"}
		for _, inv := range overdue {
			daysOverdue := int(now.Sub(*inv.DueDate).Hours() / 24)
			details := fmt.Sprintf("Invoice %s is %d days overdue. Outstanding: %s",
				inv.ReceiptNumber, daysOverdue, utils.FormatCedis(inv.RemainingBalance))
			logger.Warnf("[OverdueScan] %s", details)
			audit.Record(system, models.ActionOverdueAlert, details, "system")
		}
		return nil
	}
}
