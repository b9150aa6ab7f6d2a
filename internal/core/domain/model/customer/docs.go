// Package customer contains the customer aggregate. Customers carry the
// geographic coordinate that makes them routable as delivery stops.
package customer
