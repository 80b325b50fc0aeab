/*
Package ports defines the driven ports (interfaces) of the SDK.

These interfaces decouple the dispatch core from external
implementations, allowing pending-component registrations to live in
memory, Redis, or any store a host provides.

# Key Interfaces

  - ComponentStore: persists pending modal registrations, with TTL-based
    expiry standing in for the platform's interaction timeout.
*/
package ports
