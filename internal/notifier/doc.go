// Package notifier provides appointment notification delivery.
//
// Notifications are opt-in; the default run prints to stdout only. Available
// notifiers: dry-run (prints what would be sent), Twitter (dghubble client,
// credentials from TWITTER_* environment variables), and email (SendGrid,
// credentials from SENDGRID_API_KEY plus TTP_NOTIFY_EMAIL_FROM/TO).
package notifier
