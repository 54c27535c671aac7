package main

import (
	"bytes"
	"fmt"
	"go/format"
	"regexp"
	"strings"

	"github.com/citizenchain/citizenauth/core"
)

var (
	nodeNamePattern   = regexp.MustCompile(`node_name:\s*"([^"]+)"`)
	firstAdminPattern = regexp.MustCompile(`admins:\s*&\[[\s\S]*?hex!\("([0-9a-fA-F]{64})"\)`)
	provincePattern   = regexp.MustCompile(`^(.+?)省`)
)

// nodeBlock is one node constant found in a primitives source file
type nodeBlock struct {
	NodeName         string
	OrganizationName string
	Province         string
	AdminAddress     string
}

// parseBlocks extracts every node that declares at least one admin. Each
// block spans from its node_name to the next one.
func parseBlocks(content string) []nodeBlock {
	markers := nodeNamePattern.FindAllStringSubmatchIndex(content, -1)

	var blocks []nodeBlock
	for i, m := range markers {
		end := len(content)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		snippet := content[m[0]:end]

		admin := firstAdminPattern.FindStringSubmatch(snippet)
		if admin == nil {
			continue
		}

		nodeName := content[m[2]:m[3]]
		block := nodeBlock{
			NodeName:         nodeName,
			OrganizationName: organizationName(nodeName),
			AdminAddress:     "0x" + strings.ToLower(admin[1]),
		}
		if p := provincePattern.FindStringSubmatch(nodeName); p != nil {
			block.Province = p[1]
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func organizationName(nodeName string) string {
	name := strings.Replace(nodeName, "公民", "", 1)
	name = strings.Replace(name, "权威节点", "", 1)
	name = strings.Replace(name, "权益节点", "", 1)
	name = strings.Replace(name, "  ", " ", 1)
	return strings.TrimSpace(name)
}

// buildItems maps reserve and bank nodes to registry rows. The first reserve
// node is the national committee, the rest are provincial committees.
func buildItems(reserve, bank []nodeBlock) []core.OrganizationRegistryItem {
	items := make([]core.OrganizationRegistryItem, 0, len(reserve)+len(bank))
	for i, b := range reserve {
		item := core.OrganizationRegistryItem{
			Role:             core.RoleProvincialReserveCommittee,
			OrganizationName: b.OrganizationName,
			Province:         b.Province,
			AdminAddress:     b.AdminAddress,
		}
		if i == 0 {
			item.Role = core.RoleNationalReserveCommittee
			item.Province = ""
		}
		items = append(items, item)
	}
	for _, b := range bank {
		items = append(items, core.OrganizationRegistryItem{
			Role:             core.RoleProvincialReserveBank,
			OrganizationName: b.OrganizationName,
			Province:         b.Province,
			AdminAddress:     b.AdminAddress,
		})
	}
	return items
}

var roleIdents = map[core.Role]string{
	core.RoleNationalReserveCommittee:   "core.RoleNationalReserveCommittee",
	core.RoleProvincialReserveCommittee: "core.RoleProvincialReserveCommittee",
	core.RoleProvincialReserveBank:      "core.RoleProvincialReserveBank",
	core.RoleFullAdmin:                  "core.RoleFullAdmin",
}

// render writes the gofmt-ed table source for items
func render(items []core.OrganizationRegistryItem) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by registrygen; DO NOT EDIT.\n\n")
	buf.WriteString("package registry\n\n")
	buf.WriteString("import \"github.com/citizenchain/citizenauth/core\"\n\n")
	buf.WriteString("var table = []core.OrganizationRegistryItem{\n")
	for _, item := range items {
		fields := []string{
			"Role: " + roleIdents[item.Role],
			fmt.Sprintf("OrganizationName: %q", item.OrganizationName),
		}
		if item.Province != "" {
			fields = append(fields, fmt.Sprintf("Province: %q", item.Province))
		}
		fields = append(fields, fmt.Sprintf("AdminAddress: %q", item.AdminAddress))
		fmt.Fprintf(&buf, "\t{%s},\n", strings.Join(fields, ", "))
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
