package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/otel"
	"lodge/internal/domains/auth/model/dto"
	employeeModel "lodge/internal/domains/employee/model"
	employeeRepo "lodge/internal/domains/employee/repository"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/password"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(employeeRepo employeeRepo.Employee, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		employeeRepo: employeeRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	ssnFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    employeeModel.FieldSSN,
				Operator: gDto.FilterOperatorEq,
				Value:    req.SSN,
				Table:    employeeModel.TableName,
			},
		},
	}

	employee, err := s.employeeRepo.Get(ctx, ssnFilter)
	if err != nil || employee.SSN == "" {
		log.Warn().Str("ssn", req.SSN).Msg("login attempt with unknown ssn")

		return res, failure.Unauthorized("invalid credentials")
	}

	if err := password.Verify(req.Password, employee.Password); err != nil {
		log.Warn().Str("ssn", req.SSN).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid credentials")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(employee.SSN, employee.Role, employee.HotelID)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
