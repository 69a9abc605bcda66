// Revenger Icons
// Copyright (c) 2025 The Revenger Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Revenger Icons.
//
// Revenger Icons is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Revenger Icons is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Revenger Icons.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/vinaooo/revenger-icons/pkg/config"
	"github.com/vinaooo/revenger-icons/pkg/shared/httpclient"
)

// NewMockClient returns an authenticating client whose requests are served
// by a fresh httpmock transport. Unregistered requests fail.
func NewMockClient(cfg *config.Instance) (*httpclient.Client, *httpmock.MockTransport) {
	mock := httpmock.NewMockTransport()
	return httpclient.NewClient(cfg.Creds(), time.Second, mock), mock
}
