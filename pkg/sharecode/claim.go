package sharecode

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quiverArcade/domain"
)

// claimTTL bounds how long a shared score stays verifiable.
const claimTTL = 30 * 24 * time.Hour

// ScoreClaims is the signed payload behind a "share your score" link.
type ScoreClaims struct {
	ProductID string  `json:"product_id"`
	LevelID   string  `json:"level_id"`
	Grade     string  `json:"grade"`
	Score     float64 `json:"score"`
	TotalCost float64 `json:"total_cost"`
	jwt.RegisteredClaims
}

var ErrInvalidClaim = errors.New("invalid score claim")

// SignScore issues an HS256 token for a completed level score.
func SignScore(productID string, score domain.LevelScore, key string) (string, error) {
	now := time.Now()
	claims := ScoreClaims{
		ProductID: productID,
		LevelID:   score.LevelID,
		Grade:     string(score.Grade),
		Score:     score.Score,
		TotalCost: score.TotalCost,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(claimTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(key))
}

// ParseScore verifies a score claim token and returns its payload.
func ParseScore(tokenString, key string) (ScoreClaims, error) {
	var claims ScoreClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidClaim
		}
		return []byte(key), nil
	})
	if err != nil || !token.Valid {
		return ScoreClaims{}, ErrInvalidClaim
	}
	return claims, nil
}
