package collector

import "strings"

// identityKeys maps an identity to the label fragments that select it.
// A sample belongs to an identity when any fragment appears as a
// substring of the sample's label value. Substring matching is forgiving
// about instance labels carrying ports or FQDNs; when several identities
// match the same label, the longest fragment wins so "postgres-replica"
// beats "postgres".
type identityKeys struct {
	identity  string
	fragments []string
}

// matchIdentity resolves a label value to an identity, or "" when no
// fragment matches.
func matchIdentity(label string, keys []identityKeys) string {
	best := ""
	bestLen := 0
	for _, k := range keys {
		for _, frag := range k.fragments {
			if frag == "" {
				continue
			}
			if strings.Contains(label, frag) && len(frag) > bestLen {
				best = k.identity
				bestLen = len(frag)
			}
		}
	}
	return best
}

// nodeKeys builds match keys from node identities: the node name and its
// address both select the node.
func nodeKeys(names, addresses []string) []identityKeys {
	keys := make([]identityKeys, 0, len(names))
	for i, name := range names {
		frags := []string{name}
		if i < len(addresses) && addresses[i] != "" {
			frags = append(frags, addresses[i])
		}
		keys = append(keys, identityKeys{identity: name, fragments: frags})
	}
	return keys
}

// serviceKeys builds match keys from service identities: the full name
// and the name with a trailing ordinal stripped, so a pod label "n8n"
// still selects "n8n-0".
func serviceKeys(names []string) []identityKeys {
	keys := make([]identityKeys, 0, len(names))
	for _, name := range names {
		frags := []string{name}
		if base := stripOrdinal(name); base != name {
			frags = append(frags, base)
		}
		keys = append(keys, identityKeys{identity: name, fragments: frags})
	}
	return keys
}

// stripOrdinal removes a "-<digits>" suffix.
func stripOrdinal(name string) string {
	i := strings.LastIndex(name, "-")
	if i <= 0 || i == len(name)-1 {
		return name
	}
	for _, r := range name[i+1:] {
		if r < '0' || r > '9' {
			return name
		}
	}
	return name[:i]
}
