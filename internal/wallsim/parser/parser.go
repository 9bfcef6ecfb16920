// Package parser turns raw profile configuration text into validated profile
// specs. The format is one profile per line, each line a whitespace-separated
// list of initial section heights, e.g.:
//
//	21 25 28
//	17
//	17 22 17 19 17
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vladislavdonchev/wall-construction-demo/internal/common/wallerrors"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/configuration"
	"github.com/vladislavdonchev/wall-construction-demo/internal/wallsim/model"
)

// Parse validates text against limits and returns one ProfileSpec per
// non-blank line, in input order. Any violation aborts the whole parse; no
// partial results are ever returned.
func Parse(text string, limits configuration.LimitsConfig) ([]*model.ProfileSpec, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	profiles := make([]*model.ProfileSpec, 0, len(lines))
	totalSections := 0

	for i, rawLine := range lines {
		lineNum := i + 1
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		heights, err := parseHeights(line, lineNum, limits)
		if err != nil {
			return nil, err
		}

		totalSections += len(heights)
		profiles = append(profiles, &model.ProfileSpec{Heights: heights})
	}

	if err := validateCounts(profiles, totalSections, limits); err != nil {
		return nil, err
	}
	return profiles, nil
}

func parseHeights(line string, lineNum int, limits configuration.LimitsConfig) ([]int, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, &wallerrors.ErrInvalidConfigLine{
			Line:    lineNum,
			Message: "no heights specified; each line must have at least one height value",
		}
	}

	heights := make([]int, 0, len(tokens))
	for _, token := range tokens {
		height, err := strconv.Atoi(token)
		if err != nil {
			return nil, &wallerrors.ErrInvalidConfigLine{
				Line:    lineNum,
				Value:   token,
				Message: "each line must contain space-separated integers, e.g. '21 25 28'",
			}
		}
		if height < limits.MinHeight || height > limits.MaxHeight {
			return nil, &wallerrors.ErrInvalidConfigLine{
				Line:    lineNum,
				Value:   height,
				Message: fmt.Sprintf("heights must be between %d and %d feet", limits.MinHeight, limits.MaxHeight),
			}
		}
		heights = append(heights, height)
	}

	if len(heights) > limits.MaxSectionsPerProfile {
		return nil, &wallerrors.ErrInvalidConfigLine{
			Line:    lineNum,
			Value:   len(heights),
			Message: fmt.Sprintf("too many sections in this profile (max %d)", limits.MaxSectionsPerProfile),
		}
	}

	if limits.RejectCompletedProfiles && allAtTarget(heights, limits.MaxHeight) {
		return nil, &wallerrors.ErrInvalidConfigLine{
			Line:    lineNum,
			Message: fmt.Sprintf("every section already at target height %d; nothing to build", limits.MaxHeight),
		}
	}

	return heights, nil
}

func validateCounts(profiles []*model.ProfileSpec, totalSections int, limits configuration.LimitsConfig) error {
	if len(profiles) == 0 {
		return &wallerrors.ErrInvalidArgument{
			Name:    "config",
			Value:   "",
			Message: "no profiles found; provide at least one line with wall section heights",
		}
	}
	if len(profiles) > limits.MaxProfiles {
		return &wallerrors.ErrInvalidArgument{
			Name:    "config",
			Value:   len(profiles),
			Message: fmt.Sprintf("too many profiles (max %d)", limits.MaxProfiles),
		}
	}
	if totalSections > limits.MaxTotalSections {
		return &wallerrors.ErrInvalidArgument{
			Name:    "config",
			Value:   totalSections,
			Message: fmt.Sprintf("too many total sections across all profiles (max %d)", limits.MaxTotalSections),
		}
	}
	return nil
}

func allAtTarget(heights []int, target int) bool {
	for _, h := range heights {
		if h < target {
			return false
		}
	}
	return true
}
