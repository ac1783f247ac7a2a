package registry

import (
	"context"
	"fmt"

	"github.com/cloudbind/cloudbind/pkg/binding"
)

// RelationalConfig is the connector configuration produced for relational
// kinds, ready to hand to a database/sql driver.
type RelationalConfig struct {
	DriverURL string
	UserName  string
	Password  string
}

// RedisConfig is the connector configuration produced for redis bindings.
type RedisConfig struct {
	Addr     string
	UserName string
	Password string
}

// AMQPConfig is the connector configuration produced for rabbitmq bindings.
type AMQPConfig struct {
	URL string
}

// GenericConfig is the connector configuration for kinds without a dedicated
// connector: the kind-specific connection string plus the raw descriptor.
type GenericConfig struct {
	URI        string
	Descriptor binding.Descriptor
}

// ConnectorFunc produces a client configuration object from a resolved
// service info. Invocation is deferred until the sink requests the object.
type ConnectorFunc func(info binding.ServiceInfo) (any, error)

// ConnectorTable maps kind labels to their connector functions. The zero
// value is unusable; start from DefaultConnectors or NewConnectorTable.
type ConnectorTable struct {
	byLabel map[string]ConnectorFunc
	generic ConnectorFunc
}

// NewConnectorTable creates an empty table with the generic fallback.
func NewConnectorTable() *ConnectorTable {
	return &ConnectorTable{
		byLabel: make(map[string]ConnectorFunc),
		generic: genericConnector,
	}
}

// Set associates a connector function with a kind label, replacing any
// previous association.
func (t *ConnectorTable) Set(label string, fn ConnectorFunc) *ConnectorTable {
	t.byLabel[label] = fn
	return t
}

// FactoryFor returns the deferred factory for one service info, selecting
// the connector by the info's kind label with the generic fallback.
func (t *ConnectorTable) FactoryFor(info binding.ServiceInfo) Factory {
	fn, ok := t.byLabel[info.Label()]
	if !ok {
		fn = t.generic
	}
	return func(_ context.Context) (any, error) {
		return fn(info)
	}
}

// DefaultConnectors returns the table covering the built-in kinds.
func DefaultConnectors() *ConnectorTable {
	t := NewConnectorTable()
	t.Set(binding.LabelOracle, relationalConnector)
	t.Set(binding.LabelMySQL, relationalConnector)
	t.Set(binding.LabelPostgres, relationalConnector)
	t.Set(binding.LabelRedis, redisConnector)
	t.Set(binding.LabelRabbit, amqpConnector)
	t.Set(binding.LabelMongo, genericConnector)
	t.Set(binding.LabelSMTP, genericConnector)
	return t
}

func relationalConnector(info binding.ServiceInfo) (any, error) {
	d := info.Descriptor()
	return &RelationalConfig{
		DriverURL: info.ConnectionString(),
		UserName:  d.UserName,
		Password:  d.Password,
	}, nil
}

func redisConnector(info binding.ServiceInfo) (any, error) {
	d := info.Descriptor()
	addr := d.Host
	if d.Port > 0 {
		addr = hostPort(d.Host, d.Port)
	}
	return &RedisConfig{
		Addr:     addr,
		UserName: d.UserName,
		Password: d.Password,
	}, nil
}

func amqpConnector(info binding.ServiceInfo) (any, error) {
	return &AMQPConfig{URL: info.ConnectionString()}, nil
}

func hostPort(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}

func genericConnector(info binding.ServiceInfo) (any, error) {
	return &GenericConfig{
		URI:        info.ConnectionString(),
		Descriptor: info.Descriptor(),
	}, nil
}
