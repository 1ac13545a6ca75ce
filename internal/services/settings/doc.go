// Package settings loads and saves the patron's profile and kiosk preferences
// and maps each supported region to its skin.
package settings
