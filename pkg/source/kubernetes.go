package source

import (
	"context"
	"log/slog"
	"sort"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/cloudbind/cloudbind/pkg/errors"
	"github.com/cloudbind/cloudbind/pkg/k8s/client"
)

const (
	// BindingLabelSelector marks the Secrets this source considers bindings.
	BindingLabelSelector = "cloudbind.dev/binding=true"

	defaultNamespace = "default"
)

// Secret data keys read by the kubernetes source.
const (
	secretKeyType   = "type"
	secretKeyScheme = "scheme"
	secretKeyURI    = "uri"
)

// KubernetesSource reads raw bindings from Secrets labeled
// cloudbind.dev/binding=true in one namespace. The Secret name is the
// binding id; the data keys "type", "scheme" and "uri" supply the rest.
type KubernetesSource struct {
	// ClientSet is the Kubernetes client. If nil, the shared client is
	// created on first fetch (kubeconfig discovery or in-cluster config).
	ClientSet client.Interface

	// Namespace scopes the Secret listing. Empty means "default".
	Namespace string

	// Kubeconfig is an explicit kubeconfig path. Empty means automatic
	// discovery. Only consulted when ClientSet is nil.
	Kubeconfig string
}

// Name identifies the source.
func (s *KubernetesSource) Name() string { return "kubernetes" }

// Fetch lists the labeled Secrets. API failures are classified as
// SOURCE_UNAVAILABLE. Results are sorted by Secret name so the first-seen
// order is deterministic.
func (s *KubernetesSource) Fetch(ctx context.Context) ([]RawBinding, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.ClientSet == nil {
		var (
			cs  client.Interface
			err error
		)
		if s.Kubeconfig != "" {
			cs, _, err = client.BuildKubeClient(s.Kubeconfig)
		} else {
			cs, _, err = client.GetKubeClient()
		}
		if err != nil {
			return nil, errors.Wrap(errors.CodeSourceUnavailable,
				"failed to create kubernetes client", err)
		}
		s.ClientSet = cs
	}

	namespace := s.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	secrets, err := s.ClientSet.CoreV1().Secrets(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: BindingLabelSelector,
	})
	if err != nil {
		return nil, errors.WrapWithContext(errors.CodeSourceUnavailable,
			"failed to list binding secrets", err,
			map[string]any{"source": s.Name(), "namespace": namespace})
	}

	bindings := make([]RawBinding, 0, len(secrets.Items))
	for _, secret := range secrets.Items {
		uri := string(secret.Data[secretKeyURI])
		if uri == "" {
			slog.Warn("binding secret has no uri key, skipping",
				slog.String("namespace", namespace),
				slog.String("name", secret.Name),
			)
			continue
		}

		bindings = append(bindings, RawBinding{
			ID:     secret.Name,
			Scheme: string(secret.Data[secretKeyScheme]),
			URI:    uri,
			Kind:   string(secret.Data[secretKeyType]),
		})
	}

	sort.Slice(bindings, func(i, j int) bool { return bindings[i].ID < bindings[j].ID })

	slog.Debug("fetched binding secrets",
		slog.String("namespace", namespace),
		slog.Int("count", len(bindings)),
	)

	return bindings, nil
}
