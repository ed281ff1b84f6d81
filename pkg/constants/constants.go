// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package constants

const (
	// EnvProjectURL names the environment variable carrying the Supabase
	// project URL (e.g. https://xyzcompany.supabase.co)
	EnvProjectURL = "SUPABASE_URL"

	// EnvAnonKey names the environment variable carrying the project's
	// anon API key
	EnvAnonKey = "SUPABASE_ANON_KEY"

	// EnvJWTSecret names the environment variable carrying the project's
	// JWT secret, used only for local access-token verification
	EnvJWTSecret = "SUPABASE_JWT_SECRET"
)
