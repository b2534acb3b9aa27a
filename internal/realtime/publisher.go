package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Publisher emite eventos de mudança para os consumidores em tempo real.
type Publisher interface {
	Publicar(ctx context.Context, ev Evento) error
}

// NovoClienteRedis abre a conexão com o Redis usado pelo canal realtime.
func NovoClienteRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("realtime: ping: %w", err)
	}

	return client, nil
}

type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publicar(ctx context.Context, ev Evento) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, Canal(ev.Tabela), payload).Err()
}

// Canal retorna o nome do canal pub/sub de uma tabela.
func Canal(tabela string) string {
	return "realtime:" + tabela
}

// Assinar escuta as mudanças de uma tabela. A função retornada encerra a
// assinatura e fecha o canal.
func Assinar(ctx context.Context, client *redis.Client, tabela string) (<-chan Evento, func()) {
	pubsub := client.Subscribe(ctx, Canal(tabela))
	eventos := make(chan Evento)

	go func() {
		defer close(eventos)
		for msg := range pubsub.Channel() {
			var ev Evento
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logrus.WithError(err).Warn("realtime: evento inválido descartado")
				continue
			}
			select {
			case eventos <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return eventos, func() { _ = pubsub.Close() }
}

// NoopPublisher descarta eventos quando o Redis não está configurado.
type NoopPublisher struct{}

func (NoopPublisher) Publicar(context.Context, Evento) error { return nil }
