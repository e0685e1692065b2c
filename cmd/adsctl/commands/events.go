package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"adsync/internal/clients/kafka"

	"github.com/spf13/cobra"
)

var (
	eventsGroup         string
	eventsFromBeginning bool
	eventsType          string
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Event stream operations",
}

var eventsTailCmd = &cobra.Command{
	Use:         "tail",
	Short:       "Print audit and sync events as they arrive",
	Annotations: map[string]string{skipDependencies: "true"},
	RunE:        runEventsTail,
}

func init() {
	eventsTailCmd.Flags().StringVar(&eventsGroup, "group", "adsctl-tail", "Consumer group ID")
	eventsTailCmd.Flags().BoolVar(&eventsFromBeginning, "from-beginning", false, "Start from the oldest retained event when the group has no offset")
	eventsTailCmd.Flags().StringVar(&eventsType, "type", "", "Only print events of this type, e.g. audit.recorded")

	eventsCmd.AddCommand(eventsTailCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEventsTail(cmd *cobra.Command, args []string) error {
	if !cfg.Kafka.Enabled {
		return errors.New("kafka is disabled; set KAFKA_ENABLED=true and KAFKA_BROKERS")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	startOffset := kafka.StartLast
	if eventsFromBeginning {
		startOffset = kafka.StartFirst
	}

	consumer := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers:     strings.Split(cfg.Kafka.Brokers, ","),
		Topic:       cfg.Kafka.Topic,
		GroupID:     eventsGroup,
		StartOffset: startOffset,
	}, logger)
	defer consumer.Close()

	out := cmd.OutOrStdout()
	err := consumer.ConsumeEvents(ctx, func(ctx context.Context, event kafka.EventMessage) error {
		if eventsType != "" && event.Type != eventsType {
			return nil
		}
		return printJSON(out, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("tail events: %w", err)
	}
	return nil
}
