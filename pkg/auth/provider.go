// Copyright (c) sbauth contributors
// SPDX-License-Identifier: MIT

package auth

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/exec"
	"runtime"

	"golang.org/x/oauth2"
)

// SignInWithProvider runs the OAuth provider flow: open the server's
// /authorize page in the browser, receive the authorization code on a
// localhost callback, and exchange it for a session with the PKCE verifier.
func SignInWithProvider(ctx context.Context, client *Client, provider, redirectPort string) (*Session, error) {
	codeVerifier := oauth2.GenerateVerifier()
	challenge := oauth2.S256ChallengeFromVerifier(codeVerifier)

	redirectURL := fmt.Sprintf("http://localhost:%s/callback", redirectPort)
	authorizeURL, err := client.ProviderAuthorizeURL(provider, redirectURL, challenge)
	if err != nil {
		return nil, err
	}

	var callbackRes = make(chan callbackResult)
	if err := initializeListener(callbackRes, redirectPort); err != nil {
		return nil, NewAuthErrorWithCause(ErrInternal, err)
	}

	fmt.Println("Attempting to automatically open the sign-in page in your default browser.")
	fmt.Printf("If the browser does not open, visit the following URL:\n\n%s\n\n", authorizeURL)
	fmt.Printf("Waiting for authentication...\n\n")

	if err := OpenBrowser(authorizeURL); err != nil {
		fmt.Println("Failed to open browser automatically. Please visit the sign-in page manually.")
	}

	cs := <-callbackRes
	if cs.Error != nil {
		return nil, cs.Error
	}

	return client.ExchangeCode(ctx, cs.Code, codeVerifier)
}

func initializeListener(callback chan callbackResult, redirectPort string) error {
	l, err := net.Listen("tcp", fmt.Sprintf("localhost:%s", redirectPort))
	if err != nil {
		return fmt.Errorf("failed to initialize listener: %w", err)
	}
	go func() {
		defer func() {
			_ = l.Close()
		}()
		err := http.Serve(l, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handleCallback(w, r, callback)
		}))
		if err != nil {
			log.Printf("Error listening for auth callback: %v", err)
		}
	}()
	return nil
}

// handleCallback receives the redirect from the auth server. There is no
// state echo on this endpoint; the PKCE verifier binds the code exchange
// instead.
func handleCallback(w http.ResponseWriter, r *http.Request, callbackRes chan callbackResult) {
	code := r.URL.Query().Get("code")
	errorParam := r.URL.Query().Get("error")
	errorDescription := r.URL.Query().Get("error_description")

	if errorParam != "" {
		if errorDescription != "" {
			errorParam = errorParam + ": " + errorDescription
		}
		callbackRes <- callbackResult{Error: NewStatusError(http.StatusBadRequest, "OAuth error: "+errorParam)}
		http.Error(w, "Authentication failed", http.StatusBadRequest)
		return
	}

	if code == "" {
		callbackRes <- callbackResult{Error: NewStatusError(http.StatusBadRequest, "no authorization code received")}
		http.Error(w, "No code received", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := fmt.Fprint(w, getSuccessHTML()); err != nil {
		http.Error(w, "Internal template error", http.StatusInternalServerError)
		return
	}

	callbackRes <- callbackResult{Code: code}
}

// OpenBrowser opens url in the platform's default browser.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
