// Package mqtt ingests activity and location signals published by devices
// on {prefix}/{familyId}/activity and {prefix}/{familyId}/location.
package mqtt

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lifeline/config"
	"lifeline/internal/delivery"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/delivery/signal"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	handleTimeout     = 10 * time.Second
	disconnectQuiesce = 250 // milliseconds
)

// Params holds dependencies for the subscriber, injected by Fx.
type Params struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	FamilyUC usecase.FamilyUsecase
}

type subscriber struct {
	cfg      *config.MQTTConfig
	familyUC usecase.FamilyUsecase
	logger   *slog.Logger
	client   pahomqtt.Client
}

// NewSubscriber creates the MQTT signal delivery. A disabled subscriber
// returns from Serve immediately.
func NewSubscriber(params Params) delivery.Delivery {
	s := &subscriber{
		cfg:      params.Config.MQTT,
		familyUC: params.FamilyUC,
		logger:   params.Logger.With(slog.String("delivery", "mqtt")),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

func (s *subscriber) enabled() bool {
	return s.cfg != nil && s.cfg.Enabled && s.cfg.Broker != ""
}

func (s *subscriber) topics() []string {
	prefix := strings.TrimSuffix(s.cfg.TopicPrefix, "/")

	return []string{
		prefix + "/+/" + signal.TypeActivity,
		prefix + "/+/" + signal.TypeLocation,
	}
}

// Serve connects and subscribes. Paho reconnects on its own and the
// subscriptions are renewed in the connect handler.
func (s *subscriber) Serve(ctx context.Context) error {
	if !s.enabled() {
		s.logger.Info("MQTT subscriber disabled")

		return nil
	}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	clientID := s.cfg.ClientID
	if clientID == "" {
		clientID = "lifeline-" + uuid.NewString()[:8]
	}
	opts.SetClientID(clientID)
	opts.SetUsername(s.cfg.Username)
	opts.SetPassword(s.cfg.Password)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(false)

	opts.OnConnect = func(client pahomqtt.Client) {
		s.logger.Info("Connected to MQTT broker", slog.String("broker", s.cfg.Broker))
		s.subscribe(ctx, client)
	}
	opts.OnConnectionLost = func(_ pahomqtt.Client, err error) {
		s.logger.Error("MQTT connection lost", slog.Any("error", err))
	}

	s.client = pahomqtt.NewClient(opts)
	token := s.client.Connect()
	if token.Wait() && token.Error() != nil {
		return errors.Wrap(token.Error(), "connect mqtt broker")
	}

	return nil
}

func (s *subscriber) subscribe(ctx context.Context, client pahomqtt.Client) {
	filters := make(map[string]byte, 2)
	for _, topic := range s.topics() {
		filters[topic] = s.cfg.QoS
	}

	token := client.SubscribeMultiple(filters, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		if err := s.handle(ctx, msg.Topic(), msg.Payload()); err != nil {
			s.logger.Warn("Dropped MQTT signal",
				slog.String("topic", msg.Topic()),
				slog.Any("error", err),
			)
		}
	})
	if token.Wait() && token.Error() != nil {
		s.logger.Error("MQTT subscribe failed", slog.Any("error", token.Error()))
	}
}

// handle applies one message. The topic decides family and type; the
// payload may add a timestamp or coordinates.
func (s *subscriber) handle(ctx context.Context, topic string, payload []byte) error {
	familyID, kind, ok := s.parseTopic(topic)
	if !ok {
		return errors.Wrapf(signal.ErrMalformed, "topic %q", topic)
	}

	sig, err := signal.Decode(payload)
	if err != nil {
		return err
	}
	sig.Type = kind
	sig.FamilyID = familyID

	ctx, cancel := context.WithTimeout(ctx, handleTimeout)
	defer cancel()
	ctx, _ = deliverycontext.Scope(ctx, s.logger, sig.RequestID)

	return signal.Apply(ctx, s.familyUC, sig)
}

func (s *subscriber) parseTopic(topic string) (familyID, kind string, ok bool) {
	prefix := strings.TrimSuffix(s.cfg.TopicPrefix, "/") + "/"
	rest, found := strings.CutPrefix(topic, prefix)
	if !found {
		return "", "", false
	}

	familyID, kind, found = strings.Cut(rest, "/")
	if !found || familyID == "" || strings.Contains(kind, "/") {
		return "", "", false
	}

	return familyID, kind, true
}

func (s *subscriber) stop(context.Context) error {
	if s.client != nil && s.client.IsConnected() {
		s.logger.Info("Disconnecting from MQTT broker")
		s.client.Disconnect(disconnectQuiesce)
	}

	return nil
}
