package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name LeagueBackend --dir ../usecase --output usecase --outpkg usecasemock --filename league_backend_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/journal --output domain/journal --outpkg journalmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/preference --output domain/preference --outpkg preferencemock --filename repository_mock.go
