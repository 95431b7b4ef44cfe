package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type AuthTokensTestSuite struct {
	suite.Suite
	key []byte
}

func TestAuthTokensSuite(t *testing.T) {
	suite.Run(t, new(AuthTokensTestSuite))
}

func (s *AuthTokensTestSuite) SetupTest() {
	s.key = []byte("super secret key")
}

func (s *AuthTokensTestSuite) TestGenerateAndValidate() {
	var userID int64 = 42

	tokenString, genErr := GenerateUserJWT(userID, time.Hour, s.key)
	s.Require().NoError(genErr)
	s.Require().NotEmpty(tokenString)

	token, valErr := ValidateUserJWT(tokenString, s.key)
	s.Require().NoError(valErr)

	claims, ok := token.Claims.(*UserClaims)
	s.Require().True(ok)
	s.Equal(userID, claims.ID)
}

func (s *AuthTokensTestSuite) TestExpiredToken() {
	tokenString, genErr := GenerateUserJWT(1, -time.Minute, s.key)
	s.Require().NoError(genErr)

	_, valErr := ValidateUserJWT(tokenString, s.key)
	s.Require().ErrorIs(valErr, ErrTokenExpired)
}

func (s *AuthTokensTestSuite) TestWrongKey() {
	tokenString, genErr := GenerateUserJWT(1, time.Hour, s.key)
	s.Require().NoError(genErr)

	_, valErr := ValidateUserJWT(tokenString, []byte("another key"))
	s.Require().Error(valErr)
}
