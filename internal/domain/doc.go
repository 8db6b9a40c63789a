// Package domain contains the core domain model for pomyaml.
//
// The domain is transport- and persistence-agnostic: it does not depend on XML or YAML
// parsing, or the filesystem. Infra/adapters map into/from these types.
package domain
