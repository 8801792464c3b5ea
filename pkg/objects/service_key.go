/*
Copyright 2026 the Platform Tests Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package objects

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/trustedanalytics/platform-tests/pkg/platform"
)

type ServiceKey struct {
	GUID                string
	Name                string
	Credentials         json.RawMessage
	ServiceInstanceGUID string
}

func (k ServiceKey) Equal(other ServiceKey) bool {
	return k.GUID == other.GUID &&
		k.Name == other.Name &&
		k.ServiceInstanceGUID == other.ServiceInstanceGUID &&
		bytes.Equal(compact(k.Credentials), compact(other.Credentials))
}

func compact(in json.RawMessage) []byte {
	var out bytes.Buffer

	if err := json.Compact(&out, in); err != nil {
		return in
	}

	return out.Bytes()
}

func serviceKeyFromConsole(in *platform.ServiceKey) ServiceKey {
	return ServiceKey{
		GUID:                in.GUID,
		Name:                in.Name,
		Credentials:         in.Credentials,
		ServiceInstanceGUID: in.ServiceInstanceGUID,
	}
}

// CreateServiceKey creates a key for an instance, with a test name if name
// is empty.
func CreateServiceKey(ctx context.Context, console *platform.Client, instanceGUID, name string) (*ServiceKey, error) {
	created, err := console.CreateServiceKey(ctx, instanceGUID, nameOrTest(name))
	if err != nil {
		return nil, err
	}

	key := serviceKeyFromConsole(created)

	return &key, nil
}

func (k *ServiceKey) Delete(ctx context.Context, console *platform.Client) error {
	return console.DeleteServiceKey(ctx, k.GUID)
}
