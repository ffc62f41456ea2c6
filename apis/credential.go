/*
   Copyright 2025 The DIRPX Authors.

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

package apis

// Credential is the access key material a client presents to the broker.
type Credential struct {
	AccessKey     string
	AccessSecret  string
	SecurityToken string
}

// Valid reports whether c carries at least an access key.
func (c *Credential) Valid() bool {
	return c != nil && c.AccessKey != ""
}

// CredentialsProvider exposes the credential currently configured on a client.
// Signers in the consuming runtime read it on every request.
type CredentialsProvider interface {
	// AccessCredential returns a copy of the credential, or nil if none is set.
	AccessCredential() *Credential
}
