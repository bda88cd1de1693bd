// Package security builds TLS client settings for webservice transports.
//
//	cfg := security.TLSConfig{
//	    CAFile:     "/path/to/ca.pem",
//	    MinVersion: "1.3",
//	}
//	tlsConfig, err := cfg.Build()
package security
