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

package client

import (
	"context"
	"fmt"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ConfigMapURIScheme prefixes configuration sources stored in a ConfigMap.
const ConfigMapURIScheme = "cm://"

// IsConfigMapURI reports whether source names a ConfigMap rather than a file.
func IsConfigMapURI(source string) bool {
	return strings.HasPrefix(source, ConfigMapURIScheme)
}

// ParseConfigMapURI splits cm://namespace/name into its namespace and name.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !IsConfigMapURI(uri) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" || strings.Contains(parts[1], "/") {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s",
			ConfigMapURIScheme, uri)
	}

	return parts[0], parts[1], nil
}

// ReadConfigMapKey returns the value of the first of keys present in the
// ConfigMap's data, together with the key that matched.
func ReadConfigMapKey(ctx context.Context, c Interface, namespace, name string, keys ...string) (string, string, error) {
	cm, err := c.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return "", "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	for _, k := range keys {
		if v, ok := cm.Data[k]; ok {
			return k, v, nil
		}
	}

	return "", "", fmt.Errorf("ConfigMap %s/%s has none of the keys %v", namespace, name, keys)
}
