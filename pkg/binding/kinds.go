package binding

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cloudbind/cloudbind/pkg/errors"
)

// Service kind labels. The label of a concrete kind is fixed here, exactly
// once, and never inferred from runtime data.
const (
	LabelOracle   = "oracle"
	LabelMySQL    = "mysql"
	LabelPostgres = "postgresql"
	LabelRedis    = "redis"
	LabelRabbit   = "rabbitmq"
	LabelMongo    = "mongodb"
	LabelSMTP     = "smtp"
)

// ServiceInfo is the capability shared by all credential descriptor kinds:
// identity, kind label, access to the structured fields, and a kind-specific
// connection string (a JDBC-style URL for relational kinds, a URI otherwise).
type ServiceInfo interface {
	ID() string
	Label() string
	Descriptor() Descriptor
	ConnectionString() string
}

// kindTable is the static association from kind label to concrete descriptor
// kind. Adding a backing-service kind means adding a constructor here plus its
// label constant; the parser and catalog are untouched.
var kindTable = map[string]func(Descriptor) ServiceInfo{
	LabelOracle:   func(d Descriptor) ServiceInfo { return &OracleInfo{RelationalInfo{base{d}, "oracle"}} },
	LabelMySQL:    func(d Descriptor) ServiceInfo { return &RelationalInfo{base{d}, "mysql"} },
	LabelPostgres: func(d Descriptor) ServiceInfo { return &RelationalInfo{base{d}, "postgresql"} },
	LabelRedis:    func(d Descriptor) ServiceInfo { return &URIInfo{base{d}, LabelRedis, "redis"} },
	LabelRabbit:   func(d Descriptor) ServiceInfo { return &URIInfo{base{d}, LabelRabbit, "amqp"} },
	LabelMongo:    func(d Descriptor) ServiceInfo { return &URIInfo{base{d}, LabelMongo, "mongodb"} },
	LabelSMTP:     func(d Descriptor) ServiceInfo { return &URIInfo{base{d}, LabelSMTP, "smtp"} },
}

// SupportedLabels returns the labels with a dedicated descriptor kind.
func SupportedLabels() []string {
	labels := make([]string, 0, len(kindTable))
	for label := range kindTable {
		labels = append(labels, label)
	}
	return labels
}

// NewInfo associates a parsed descriptor with its concrete kind. The kind
// hint (usually the platform's service tag) selects the variant via the
// static label table; unrecognized hints produce a GenericInfo labeled with
// the lowercased hint so lookups by label still work. The id must be
// non-empty.
func NewInfo(kindHint, id string, d Descriptor) (ServiceInfo, error) {
	if id == "" {
		return nil, errors.New(errors.CodeMalformedCredential, "service id is empty")
	}
	d.ID = id

	label := strings.ToLower(strings.TrimSpace(kindHint))
	if label == "" {
		label = d.Scheme
	}

	if construct, ok := kindTable[label]; ok {
		return construct(d), nil
	}
	return &GenericInfo{base{d}, label}, nil
}

// base carries the shared descriptor state of all kinds.
type base struct {
	desc Descriptor
}

func (b *base) ID() string             { return b.desc.ID }
func (b *base) Descriptor() Descriptor { return b.desc }

// RelationalInfo is the generic relational descriptor kind, parameterized by
// the database type token used to build driver-specific JDBC URLs.
type RelationalInfo struct {
	base
	dbType string
}

// NewRelationalInfo creates a relational descriptor for a database type that
// has no dedicated kind. The database type doubles as the label.
func NewRelationalInfo(id string, d Descriptor, dbType string) *RelationalInfo {
	d.ID = id
	return &RelationalInfo{base{d}, dbType}
}

func (r *RelationalInfo) Label() string { return r.dbType }

// ConnectionString builds the driver URL in the conventional
// jdbc:<dbtype>://host:port/database?user=...&password=... form.
func (r *RelationalInfo) ConnectionString() string {
	d := r.desc
	var sb strings.Builder
	fmt.Fprintf(&sb, "jdbc:%s://%s", r.dbType, d.Host)
	if d.Port > 0 {
		fmt.Fprintf(&sb, ":%d", d.Port)
	}
	fmt.Fprintf(&sb, "/%s", d.Path)
	if d.UserName != "" {
		fmt.Fprintf(&sb, "?user=%s&password=%s",
			url.QueryEscape(d.UserName), url.QueryEscape(d.Password))
	}
	return sb.String()
}

// OracleInfo is the Oracle relational kind. Oracle's thin driver uses its own
// URL shape rather than the generic relational one.
type OracleInfo struct {
	RelationalInfo
}

func (o *OracleInfo) Label() string { return LabelOracle }

// ConnectionString builds a thin-driver URL of the form
// jdbc:oracle:thin:user/password@host:port/service.
func (o *OracleInfo) ConnectionString() string {
	d := o.desc
	return fmt.Sprintf("jdbc:%s:thin:%s/%s@%s:%d/%s",
		o.dbType, d.UserName, d.Password, d.Host, d.Port, d.Path)
}

// URIInfo covers the kinds whose clients accept a plain URI (redis, rabbitmq,
// mongodb, smtp). The formatted scheme is fixed per kind, independent of the
// scheme token the platform used in the raw binding.
type URIInfo struct {
	base
	label  string
	scheme string
}

func (u *URIInfo) Label() string { return u.label }

// ConnectionString re-renders the structured fields as a URI with the kind's
// canonical scheme, percent-encoding user and password.
func (u *URIInfo) ConnectionString() string {
	return formatURI(u.desc, u.scheme)
}

// GenericInfo carries descriptors of kinds without a dedicated variant. The
// label is taken from the kind hint at construction time.
type GenericInfo struct {
	base
	label string
}

func (g *GenericInfo) Label() string { return g.label }

// ConnectionString re-renders the descriptor with its own scheme token.
func (g *GenericInfo) ConnectionString() string {
	return formatURI(g.desc, g.desc.Scheme)
}

func formatURI(d Descriptor, scheme string) string {
	u := url.URL{
		Scheme: scheme,
		Host:   d.Host,
	}
	if d.Port > 0 {
		u.Host = fmt.Sprintf("%s:%d", d.Host, d.Port)
	}
	if d.Path != "" {
		u.Path = "/" + d.Path
	}
	if d.UserName != "" || d.Password != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.UserName, d.Password)
		} else {
			u.User = url.User(d.UserName)
		}
	}
	return u.String()
}
