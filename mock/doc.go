// Package mock holds gomock test doubles for the srcfg interfaces.
package mock

//go:generate mockgen -destination=resolver_mock.go -package=mock github.com/0xalexb/srcfg Resolver
//go:generate mockgen -destination=env_mock.go -package=mock github.com/0xalexb/srcfg/interp Env
