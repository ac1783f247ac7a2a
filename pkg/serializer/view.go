package serializer

import (
	"github.com/cloudbind/cloudbind/pkg/binding"
)

// ServiceView is the serializable, redacted projection of one resolved
// service binding. The password field carries a placeholder when set and the
// connection string is rendered from the redacted descriptor.
type ServiceView struct {
	ID               string `json:"id" yaml:"id"`
	Label            string `json:"label" yaml:"label"`
	Scheme           string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Host             string `json:"host,omitempty" yaml:"host,omitempty"`
	Port             int    `json:"port,omitempty" yaml:"port,omitempty"`
	Path             string `json:"path,omitempty" yaml:"path,omitempty"`
	UserName         string `json:"userName,omitempty" yaml:"userName,omitempty"`
	Password         string `json:"password,omitempty" yaml:"password,omitempty"`
	ConnectionString string `json:"connectionString,omitempty" yaml:"connectionString,omitempty"`
}

// View builds the redacted projection of one service info.
func View(info binding.ServiceInfo) ServiceView {
	redacted := info.Descriptor().Redacted()

	// re-associate the redacted descriptor with its kind so the rendered
	// connection string carries the placeholder, never the password
	view := ServiceView{
		ID:       redacted.ID,
		Label:    info.Label(),
		Scheme:   redacted.Scheme,
		Host:     redacted.Host,
		Port:     redacted.Port,
		Path:     redacted.Path,
		UserName: redacted.UserName,
		Password: redacted.Password,
	}
	if safe, err := binding.NewInfo(info.Label(), redacted.ID, redacted); err == nil {
		view.ConnectionString = safe.ConnectionString()
	}
	return view
}

// Views builds redacted projections for a list of service infos, preserving
// the given order.
func Views(infos []binding.ServiceInfo) []ServiceView {
	views := make([]ServiceView, 0, len(infos))
	for _, info := range infos {
		views = append(views, View(info))
	}
	return views
}
