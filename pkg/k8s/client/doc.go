// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package client builds the Kubernetes client used to read service
// configuration from ConfigMaps.
//
// GetKubeClient initializes the client once per process and caches both the
// client and any build error:
//
//	cs, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	key, data, err := client.ReadConfigMapKey(ctx, cs, "tars", "recommender", "config.yaml")
//
// Outside a cluster the kubeconfig is taken from KUBECONFIG, then
// ~/.kube/config. Inside a pod the service account is used.
//
// ConfigMap sources are addressed as cm://namespace/name; see
// ParseConfigMapURI. Tests pass k8s.io/client-go/kubernetes/fake clientsets
// wherever an Interface is accepted.
package client
