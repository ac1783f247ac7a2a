// Package client provides a shared Kubernetes clientset with automatic
// configuration discovery (KUBECONFIG, ~/.kube/config, in-cluster).
package client
