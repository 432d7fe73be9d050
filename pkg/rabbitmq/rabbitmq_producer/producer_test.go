package rabbitmq_producer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublisherConfigValidate(t *testing.T) {
	require.NoError(t, PublisherConfig{}.validate())
	require.NoError(t, PublisherConfig{ExchangeName: "x", ExchangeType: "topic", DeclareExchangeIfMissing: true}.validate())
	require.Error(t, PublisherConfig{ExchangeType: "topic", DeclareExchangeIfMissing: true}.validate())
	require.Error(t, PublisherConfig{ExchangeName: "x", DeclareExchangeIfMissing: true}.validate())
	// без объявления обменника проверять нечего
	require.NoError(t, PublisherConfig{ExchangeName: "x"}.validate())
}
