// Package ntfy implements the HTTP publish path for ntfy-compatible servers.
//
// A message is published with a single request and no retries: [TargetURL]
// resolves the destination from the effective base URL, topic and optional
// override, [PublishOptions.Headers] renders the optional publish headers,
// and [Client.Publish] issues the request and maps the response. Responses
// outside 2xx/3xx and transport failures are reported as [*DeliveryError].
package ntfy
