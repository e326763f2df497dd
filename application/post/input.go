package post

import (
	stdErrors "errors"
	"strconv"
	"strings"

	"github.com/muhammadheryan/heart2help/constant"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/utils/errors"
)

// parseIDList reads a comma separated id list such as "1,2,3".
func parseIDList(field, raw string) ([]uint64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil || id == 0 {
			return nil, errors.SetValidationError(map[string]string{field: "The " + field + " must be a comma separated list of ids."})
		}
		ids = append(ids, id)
	}
	return uniqueIDs(ids), nil
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// splitTags trims, drops empties and dedupes a comma separated tag string, keeping order.
func splitTags(raw string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

// newTags returns the titles not already attached, compared case-insensitively.
func newTags(titles, current []string) []string {
	have := make(map[string]struct{}, len(current))
	for _, t := range current {
		have[strings.ToLower(t)] = struct{}{}
	}
	var out []string
	for _, t := range titles {
		if _, ok := have[strings.ToLower(t)]; !ok {
			out = append(out, t)
		}
	}
	return out
}

// uploadError maps file store failures: bad input is a validation error, anything else is upstream.
func uploadError(err error) error {
	switch {
	case stdErrors.Is(err, cloudinary.ErrFileTooLarge):
		return errors.SetValidationError(map[string]string{"images": "The image exceeds the allowed file size."})
	case stdErrors.Is(err, cloudinary.ErrInvalidContentType):
		return errors.SetValidationError(map[string]string{"images": "The images must be jpeg, png, gif or webp."})
	}
	return errors.SetCustomError(constant.ErrExternalService)
}
