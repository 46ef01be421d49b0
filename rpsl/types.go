package rpsl

// Attribute tables of the RIPE DB object types.
// https://apps.db.ripe.net/docs/RPSL-Object-Types/

var stdGenerated = []AttrSpec{
	Gen("created", SINGLE),
	Gen("last-modified", SINGLE),
}

func init() {
	for _, s := range builtinSchemas() {
		Register(s)
	}
}

func builtinSchemas() []*Schema {
	return []*Schema{
		{
			Type:       "as-block",
			PrimaryKey: "as-block",
			Attributes: []AttrSpec{
				Attr("as-block", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-lower", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "as-set",
			PrimaryKey: "as-set",
			Attributes: setAttributes("as-set", false),
			Generated:  stdGenerated,
		},
		{
			Type:       "aut-num",
			PrimaryKey: "aut-num",
			Attributes: []AttrSpec{
				Attr("aut-num", REQUIRED, SINGLE),
				Attr("as-name", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("member-of", OPTIONAL, MULTIPLE),
				Attr("import-via", OPTIONAL, MULTIPLE),
				Attr("import", OPTIONAL, MULTIPLE),
				Attr("mp-import", OPTIONAL, MULTIPLE),
				Attr("export-via", OPTIONAL, MULTIPLE),
				Attr("export", OPTIONAL, MULTIPLE),
				Attr("mp-export", OPTIONAL, MULTIPLE),
				Attr("default", OPTIONAL, MULTIPLE),
				Attr("mp-default", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, SINGLE),
				Attr("sponsoring-org", OPTIONAL, SINGLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("abuse-c", OPTIONAL, SINGLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: []AttrSpec{
				Gen("status", SINGLE),
				Gen("created", SINGLE),
				Gen("last-modified", SINGLE),
			},
		},
		{
			Type:       "domain",
			PrimaryKey: "domain",
			Attributes: []AttrSpec{
				Attr("domain", REQUIRED, SINGLE),
				Attr("descr", REQUIRED, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("zone-c", REQUIRED, MULTIPLE),
				Attr("nserver", REQUIRED, MULTIPLE),
				Attr("ds-rdata", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "filter-set",
			PrimaryKey: "filter-set",
			Attributes: []AttrSpec{
				Attr("filter-set", REQUIRED, SINGLE),
				Attr("descr", REQUIRED, MULTIPLE),
				Attr("filter", OPTIONAL, SINGLE),
				Attr("mp-filter", OPTIONAL, SINGLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("mnt-lower", OPTIONAL, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "inet-rtr",
			PrimaryKey: "inet-rtr",
			Attributes: []AttrSpec{
				Attr("inet-rtr", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("alias", OPTIONAL, MULTIPLE),
				Attr("local-as", REQUIRED, SINGLE),
				Attr("ifaddr", REQUIRED, MULTIPLE),
				Attr("interface", OPTIONAL, MULTIPLE),
				Attr("peer", OPTIONAL, MULTIPLE),
				Attr("mp-peer", OPTIONAL, MULTIPLE),
				Attr("member-of", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "inet6num",
			PrimaryKey: "inet6num",
			Attributes: []AttrSpec{
				Attr("inet6num", REQUIRED, SINGLE),
				Attr("netname", REQUIRED, SINGLE),
				Attr("descr", REQUIRED, MULTIPLE),
				Attr("country", REQUIRED, MULTIPLE),
				Attr("geoloc", OPTIONAL, SINGLE),
				Attr("language", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, SINGLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Fixed("status", REQUIRED,
					"ALLOCATED-BY-RIR", "ALLOCATED-BY-LIR", "AGGREGATED-BY-LIR",
					"ASSIGNED", "ASSIGNED PI", "ASSIGNED ANYCAST",
				),
				Attr("assignment-size", OPTIONAL, SINGLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("mnt-lower", OPTIONAL, MULTIPLE),
				Attr("mnt-routes", OPTIONAL, MULTIPLE),
				Attr("mnt-domains", OPTIONAL, MULTIPLE),
				Attr("mnt-irt", OPTIONAL, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: []AttrSpec{
				Gen("sponsoring-org", SINGLE),
				Gen("created", SINGLE),
				Gen("last-modified", SINGLE),
			},
		},
		{
			Type:       "inetnum",
			PrimaryKey: "inetnum",
			ParseKey:   parseInetnumKey,
			Attributes: []AttrSpec{
				Attr("inetnum", REQUIRED, SINGLE),
				Attr("netname", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("country", REQUIRED, MULTIPLE),
				Attr("geofeed", OPTIONAL, SINGLE),
				Attr("geoloc", OPTIONAL, SINGLE),
				Attr("language", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, SINGLE),
				Attr("sponsoring-org", OPTIONAL, SINGLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("abuse-c", OPTIONAL, SINGLE),
				Fixed("status", REQUIRED,
					"ALLOCATED UNSPECIFIED", "ALLOCATED PA", "ALLOCATED PI",
					"LIR-PARTITIONED PA", "LIR-PARTITIONED PI", "SUB-ALLOCATED PA",
					"ASSIGNED PA", "ASSIGNED PI", "ASSIGNED ANYCAST",
					"LEGACY", "NOT_SET", "EARLY-REGISTRATION",
				),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("mnt-lower", OPTIONAL, MULTIPLE),
				Attr("mnt-routes", OPTIONAL, MULTIPLE),
				Attr("mnt-domains", OPTIONAL, MULTIPLE),
				Attr("mnt-irt", OPTIONAL, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "irt",
			PrimaryKey: "irt",
			Attributes: []AttrSpec{
				Attr("irt", REQUIRED, SINGLE),
				Attr("address", REQUIRED, MULTIPLE),
				Attr("phone", OPTIONAL, MULTIPLE),
				Attr("fax-no", OPTIONAL, MULTIPLE),
				Attr("e-mail", REQUIRED, MULTIPLE),
				Attr("signature", OPTIONAL, MULTIPLE),
				Attr("encryption", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("auth", REQUIRED, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("irt-nfy", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "key-cert",
			PrimaryKey: "key-cert",
			Attributes: []AttrSpec{
				Attr("key-cert", REQUIRED, SINGLE),
				Attr("certif", REQUIRED, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("admin-c", OPTIONAL, MULTIPLE),
				Attr("tech-c", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: []AttrSpec{
				Gen("method", SINGLE),
				Gen("owner", MULTIPLE),
				Gen("fingerpr", SINGLE),
				Gen("created", SINGLE),
				Gen("last-modified", SINGLE),
			},
		},
		{
			Type:       "mntner",
			PrimaryKey: "mntner",
			Attributes: []AttrSpec{
				Attr("mntner", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("tech-c", OPTIONAL, MULTIPLE),
				Attr("upd-to", REQUIRED, MULTIPLE),
				Attr("mnt-nfy", OPTIONAL, MULTIPLE),
				Attr("auth", REQUIRED, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("mnt-ref", OPTIONAL, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "organisation",
			PrimaryKey: "organisation",
			DefaultKey: "AUTO-1",
			Attributes: []AttrSpec{
				Attr("organisation", REQUIRED, SINGLE),
				Attr("org-name", REQUIRED, SINGLE),
				Fixed("org-type", REQUIRED,
					"IANA", "RIR", "NIR", "LIR", "WHITEPAGES", "DIRECT ASSIGNMENT", "OTHER",
				),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("address", REQUIRED, MULTIPLE),
				Attr("country", OPTIONAL, SINGLE),
				Attr("phone", OPTIONAL, MULTIPLE),
				Attr("fax-no", OPTIONAL, MULTIPLE),
				Attr("e-mail", REQUIRED, MULTIPLE),
				Attr("geoloc", OPTIONAL, SINGLE),
				Attr("language", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("admin-c", OPTIONAL, MULTIPLE),
				Attr("tech-c", OPTIONAL, MULTIPLE),
				Attr("abuse-c", OPTIONAL, SINGLE),
				Attr("ref-nfy", OPTIONAL, MULTIPLE),
				Attr("mnt-ref", REQUIRED, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "peering-set",
			PrimaryKey: "peering-set",
			Attributes: []AttrSpec{
				Attr("peering-set", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("peering", OPTIONAL, MULTIPLE),
				Attr("mp-peering", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("tech-c", REQUIRED, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("mnt-lower", OPTIONAL, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "person",
			PrimaryKey: "nic-hdl",
			DefaultKey: "AUTO-1",
			Attributes: []AttrSpec{
				Attr("person", REQUIRED, SINGLE),
				Attr("address", REQUIRED, MULTIPLE),
				Attr("phone", REQUIRED, MULTIPLE),
				Attr("fax-no", OPTIONAL, MULTIPLE),
				Attr("e-mail", OPTIONAL, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("nic-hdl", REQUIRED, SINGLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: []AttrSpec{
				Gen("created", SINGLE),
				Gen("last-modified", SINGLE),
				Gen("abuse-mailbox", MULTIPLE),
			},
		},
		{
			Type:       "poem",
			PrimaryKey: "poem",
			Attributes: []AttrSpec{
				Attr("poem", REQUIRED, SINGLE),
				Attr("descr", OPTIONAL, MULTIPLE),
				Matched("form", REQUIRED, `^FORM-`),
				Attr("text", REQUIRED, MULTIPLE),
				Attr("author", OPTIONAL, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, SINGLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "poetic-form",
			PrimaryKey: "poetic-form",
			Attributes: []AttrSpec{
				Matched("poetic-form", REQUIRED, `^FORM-`),
				Attr("descr", OPTIONAL, MULTIPLE),
				Attr("admin-c", REQUIRED, MULTIPLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		{
			Type:       "role",
			PrimaryKey: "nic-hdl",
			DefaultKey: "AUTO-1",
			Attributes: []AttrSpec{
				Attr("role", REQUIRED, SINGLE),
				Attr("address", REQUIRED, MULTIPLE),
				Attr("phone", OPTIONAL, MULTIPLE),
				Attr("fax-no", OPTIONAL, MULTIPLE),
				Attr("e-mail", REQUIRED, MULTIPLE),
				Attr("org", OPTIONAL, MULTIPLE),
				Attr("admin-c", OPTIONAL, MULTIPLE),
				Attr("tech-c", OPTIONAL, MULTIPLE),
				Attr("nic-hdl", REQUIRED, SINGLE),
				Attr("remarks", OPTIONAL, MULTIPLE),
				Attr("notify", OPTIONAL, MULTIPLE),
				Attr("abuse-mailbox", OPTIONAL, MULTIPLE),
				Attr("mnt-by", REQUIRED, MULTIPLE),
				Attr("source", REQUIRED, SINGLE),
			},
			Generated: stdGenerated,
		},
		routeSchema("route"),
		routeSchema("route6"),
		{
			Type:       "route-set",
			PrimaryKey: "route-set",
			Attributes: setAttributes("route-set", true),
			Generated:  stdGenerated,
		},
		{
			Type:       "rtr-set",
			PrimaryKey: "rtr-set",
			Attributes: setAttributes("rtr-set", true),
			Generated:  stdGenerated,
		},
	}
}

// setAttributes is the table shared by the as-set, route-set and rtr-set
// types. withMP adds mp-members.
func setAttributes(typ string, withMP bool) []AttrSpec {
	sAttrs := []AttrSpec{
		Attr(typ, REQUIRED, SINGLE),
		Attr("descr", OPTIONAL, MULTIPLE),
		Attr("members", OPTIONAL, MULTIPLE),
	}
	if withMP {
		sAttrs = append(sAttrs, Attr("mp-members", OPTIONAL, MULTIPLE))
	}
	return append(sAttrs,
		Attr("mbrs-by-ref", OPTIONAL, MULTIPLE),
		Attr("remarks", OPTIONAL, MULTIPLE),
		Attr("org", OPTIONAL, MULTIPLE),
		Attr("tech-c", REQUIRED, MULTIPLE),
		Attr("admin-c", REQUIRED, MULTIPLE),
		Attr("notify", OPTIONAL, MULTIPLE),
		Attr("mnt-by", REQUIRED, MULTIPLE),
		Attr("mnt-lower", OPTIONAL, MULTIPLE),
		Attr("source", REQUIRED, SINGLE),
	)
}

func routeSchema(typ string) *Schema {
	return &Schema{
		Type:       typ,
		PrimaryKey: typ,
		ParseKey:   parseRouteKey,
		KeyValue:   routeKeyValue,
		Attributes: []AttrSpec{
			Attr(typ, REQUIRED, SINGLE),
			Attr("descr", REQUIRED, MULTIPLE),
			Attr("origin", REQUIRED, SINGLE),
			Attr("pingable", OPTIONAL, MULTIPLE),
			Attr("ping-hdl", OPTIONAL, MULTIPLE),
			Attr("holes", OPTIONAL, MULTIPLE),
			Attr("org", OPTIONAL, MULTIPLE),
			Attr("member-of", OPTIONAL, MULTIPLE),
			Attr("inject", OPTIONAL, MULTIPLE),
			Attr("aggr-mtd", OPTIONAL, SINGLE),
			Attr("aggr-bndry", OPTIONAL, SINGLE),
			Attr("export-comps", OPTIONAL, SINGLE),
			Attr("components", OPTIONAL, SINGLE),
			Attr("remarks", OPTIONAL, MULTIPLE),
			Attr("notify", OPTIONAL, MULTIPLE),
			Attr("mnt-lower", OPTIONAL, MULTIPLE),
			Attr("mnt-routes", OPTIONAL, MULTIPLE),
			Attr("mnt-by", REQUIRED, MULTIPLE),
			Attr("source", REQUIRED, SINGLE),
		},
		Generated: stdGenerated,
	}
}
