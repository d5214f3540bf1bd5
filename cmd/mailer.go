package cmd

import (
	"errors"

	"github.com/SundayYogurt/jobboard_service/infra/queue"
	"github.com/SundayYogurt/jobboard_service/internal/mailer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var mailerCmd = &cobra.Command{
	Use:   "mailer",
	Short: "Consume application events and send notification e-mails",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.KafkaBroker == "" {
			return errors.New("KAFKA_BROKER is required")
		}
		if cfg.SMTPHost == "" || cfg.MailFrom == "" {
			return errors.New("SMTP_HOST and MAIL_FROM are required")
		}

		sender := mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
			FromName: cfg.MailFromName,
		})

		consumer := queue.NewKafkaConsumer(queue.KafkaConfig{
			Broker:   cfg.KafkaBroker,
			Topic:    cfg.KafkaTopic,
			GroupID:  cfg.KafkaGroupID,
			Username: cfg.KafkaUsername,
			Password: cfg.KafkaPassword,
		}, "mailer", mailer.NewEventHandler(sender))

		log.Info().
			Str("broker", cfg.KafkaBroker).
			Str("topic", cfg.KafkaTopic).
			Str("group", cfg.KafkaGroupID).
			Msg("mailer listening for events")
		return consumer.Listen(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mailerCmd)
}
