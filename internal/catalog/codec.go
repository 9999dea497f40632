package catalog

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/osse101/JobEconomy_Go/internal/domain"
	"github.com/osse101/JobEconomy_Go/internal/logger"
)

// Decode parses a catalog document. Every numeric field is validated up
// front so a malformed entry fails the whole load with the offending path.
func Decode(ctx context.Context, data []byte) (*Snapshot, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidCatalog, ErrMsgParseCatalog, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidCatalog)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: %s", domain.ErrInvalidCatalog, root.Line, ErrMsgExpectedMap)
	}

	var (
		jobList []string
		delay   = domain.DefaultSalaryDelaySeconds
		defs    []*domain.JobDefinition
	)

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		switch key {
		case KeyJobs:
			if val.Kind != yaml.ScalarNode {
				return nil, pathError(domain.ErrInvalidCatalog, key, val, ErrMsgExpectedScalar)
			}
			jobList = ParseJobList(val.Value)
		case KeySalaryDelay:
			n, err := parseInt(key, val)
			if err != nil {
				return nil, err
			}
			if n < 1 {
				return nil, pathError(domain.ErrInvalidCatalog, key, val, "must be at least 1")
			}
			delay = n
		default:
			def, err := decodeJob(ctx, key, val)
			if err != nil {
				return nil, err
			}
			defs = append(defs, def)
		}
	}

	return NewSnapshot(jobList, delay, defs...), nil
}

func decodeJob(ctx context.Context, name string, node *yaml.Node) (*domain.JobDefinition, error) {
	if node.Kind != yaml.MappingNode {
		return nil, pathError(domain.ErrInvalidCatalog, name, node, ErrMsgExpectedMap)
	}

	def := &domain.JobDefinition{Name: name, Salary: decimal.Zero}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		path := name + "." + key

		switch key {
		case KeySalary:
			d, err := parseDecimal(path, val)
			if err != nil {
				return nil, err
			}
			def.Salary = d
		case KeyDisableSalary:
			b, err := strconv.ParseBool(val.Value)
			if err != nil || val.Kind != yaml.ScalarNode {
				return nil, pathError(domain.ErrInvalidCatalog, path, val, "is not a boolean")
			}
			def.SalaryDisabled = b
		default:
			category := domain.ActionCategory(strings.ToLower(key))
			if !category.Valid() {
				logger.FromContext(ctx).Debug(LogMsgUnknownJobKey, "job", name, "key", key)
				continue
			}
			table, err := decodeRewardTable(path, val)
			if err != nil {
				return nil, err
			}
			if def.Rewards == nil {
				def.Rewards = make(map[domain.ActionCategory]map[string]domain.Reward)
			}
			def.Rewards[category] = table
		}
	}
	return def, nil
}

func decodeRewardTable(path string, node *yaml.Node) (map[string]domain.Reward, error) {
	if node.Kind != yaml.MappingNode {
		return nil, pathError(domain.ErrInvalidCatalog, path, node, ErrMsgExpectedMap)
	}

	table := make(map[string]domain.Reward, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		subject, val := node.Content[i].Value, node.Content[i+1]
		entryPath := path + "." + subject
		if val.Kind != yaml.MappingNode {
			return nil, pathError(domain.ErrInvalidReward, entryPath, val, ErrMsgExpectedMap)
		}

		r := domain.Reward{Pay: decimal.Zero}
		for j := 0; j+1 < len(val.Content); j += 2 {
			field, fv := val.Content[j].Value, val.Content[j+1]
			switch field {
			case KeyExpReward:
				n, err := parseInt(entryPath+"."+field, fv)
				if err != nil {
					return nil, err
				}
				if n < 0 {
					return nil, pathError(domain.ErrInvalidReward, entryPath+"."+field, fv, ErrMsgNegativeValue)
				}
				r.ExpReward = n
			case KeyPay:
				d, err := parseDecimal(entryPath+"."+field, fv)
				if err != nil {
					return nil, err
				}
				if d.IsNegative() {
					return nil, pathError(domain.ErrInvalidReward, entryPath+"."+field, fv, ErrMsgNegativeValue)
				}
				r.Pay = d
			}
		}
		table[domain.NormalizeSubject(subject)] = r
	}
	return table, nil
}

func parseInt(path string, node *yaml.Node) (int, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, pathError(domain.ErrInvalidReward, path, node, ErrMsgExpectedScalar)
	}
	n, err := strconv.Atoi(strings.TrimSpace(node.Value))
	if err != nil {
		return 0, pathError(domain.ErrInvalidReward, path, node, fmt.Sprintf("%q is not an integer", node.Value))
	}
	return n, nil
}

func parseDecimal(path string, node *yaml.Node) (decimal.Decimal, error) {
	if node.Kind != yaml.ScalarNode {
		return decimal.Zero, pathError(domain.ErrInvalidReward, path, node, ErrMsgExpectedScalar)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(node.Value))
	if err != nil {
		return decimal.Zero, pathError(domain.ErrInvalidReward, path, node, fmt.Sprintf("%q is not a number", node.Value))
	}
	return d, nil
}

func pathError(sentinel error, path string, node *yaml.Node, msg string) error {
	return fmt.Errorf("%w: %s (line %d): %s", sentinel, path, node.Line, msg)
}

// Encode renders the snapshot in file order: jobs, salarydelay, then one
// section per job. Subjects are sorted so output is stable.
func Encode(s *Snapshot) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		strNode(KeyJobs), strNode(strings.Join(s.jobList, ", ")),
		strNode(KeySalaryDelay), plainNode(strconv.Itoa(s.salaryDelay)),
	)

	for _, def := range s.Definitions() {
		section := &yaml.Node{Kind: yaml.MappingNode}
		section.Content = append(section.Content,
			strNode(KeyDisableSalary), plainNode(strconv.FormatBool(def.SalaryDisabled)),
			strNode(KeySalary), plainNode(def.Salary.String()),
		)

		for _, category := range domain.ActionCategories {
			table, ok := def.Rewards[category]
			if !ok {
				continue
			}
			subjects := make([]string, 0, len(table))
			for subject := range table {
				subjects = append(subjects, subject)
			}
			sort.Strings(subjects)

			tableNode := &yaml.Node{Kind: yaml.MappingNode}
			for _, subject := range subjects {
				r := table[subject]
				entry := &yaml.Node{Kind: yaml.MappingNode}
				entry.Content = append(entry.Content,
					strNode(KeyExpReward), plainNode(strconv.Itoa(r.ExpReward)),
					strNode(KeyPay), plainNode(formatPay(r.Pay)),
				)
				tableNode.Content = append(tableNode.Content, strNode(subject), entry)
			}
			section.Content = append(section.Content, strNode(string(category)), tableNode)
		}

		root.Content = append(root.Content, strNode(def.Name), section)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeCatalog, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgEncodeCatalog, err)
	}
	return buf.Bytes(), nil
}

// formatPay keeps at least two decimals without dropping finer precision
func formatPay(d decimal.Decimal) string {
	if d.Exponent() < -2 {
		return d.String()
	}
	return d.StringFixed(2)
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func plainNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
}
