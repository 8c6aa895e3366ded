package persistence

import (
	"context"
	"database/sql"

	"ifcfg-agent/internal/domain/entities"
	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

// MySQLRepository is a DeclarationRepository backed by MySQL. In daemon
// mode the orchestration layer inserts interface declarations for each
// node, and the agent polls its own rows.
type MySQLRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewMySQLRepository creates a new MySQLRepository.
func NewMySQLRepository(db *sql.DB, logger *logrus.Logger) interfaces.DeclarationRepository {
	return &MySQLRepository{
		db:     db,
		logger: logger,
	}
}

// GetPendingDeclarations returns declarations not yet applied on the
// given node. A row's identifier column is classified by shape, so it
// may hold a device name, a MAC address, or a decimal sequence
// position.
func (r *MySQLRepository) GetPendingDeclarations(ctx context.Context, nodeName string) ([]entities.Declaration, error) {
	query := `
		SELECT id, identifier, state, is_alias, ip_address, netmask, mac_address,
		       gateway, boot_protocol, mtu, dns_primary, dns_secondary, domain, vlan_id
		FROM interface_declaration
		WHERE applied = 0
		AND node_name = ?
		AND deleted_at IS NULL
		LIMIT 50
	`

	rows, err := r.db.QueryContext(ctx, query, nodeName)
	if err != nil {
		return nil, errors.NewSystemError("database query failed", err)
	}
	defer rows.Close()

	var declarations []entities.Declaration

	for rows.Next() {
		var (
			id         int
			identifier string
			params     entities.InterfaceParams
			isAlias    sql.NullBool
			ipAddress  sql.NullString
			netmask    sql.NullString
			macAddress sql.NullString
			gateway    sql.NullString
			bootProto  sql.NullString
			mtu        sql.NullInt64
			dns1       sql.NullString
			dns2       sql.NullString
			domain     sql.NullString
			vlanID     sql.NullInt64
		)

		err := rows.Scan(
			&id,
			&identifier,
			&params.State,
			&isAlias,
			&ipAddress,
			&netmask,
			&macAddress,
			&gateway,
			&bootProto,
			&mtu,
			&dns1,
			&dns2,
			&domain,
			&vlanID,
		)
		if err != nil {
			r.logger.WithError(err).Error("row scan failed")
			continue
		}

		if isAlias.Valid {
			params.Alias = isAlias.Bool
		}
		params.IPAddress = ipAddress.String
		params.Netmask = netmask.String
		params.MacAddress = macAddress.String
		params.Gateway = gateway.String
		params.BootProtocol = bootProto.String
		params.DNSPrimary = dns1.String
		params.DNSSecondary = dns2.String
		params.Domain = domain.String
		if mtu.Valid {
			params.MTU = int(mtu.Int64)
		}
		if vlanID.Valid {
			v := int(vlanID.Int64)
			params.VLANID = &v
		}

		ident, err := entities.ClassifyIdentifier(identifier)
		if err != nil {
			r.logger.WithError(err).WithField("declaration_id", id).Error("identifier classification failed")
			continue
		}

		declarations = append(declarations, entities.Declaration{
			ID:         id,
			Identifier: ident,
			Params:     params,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, errors.NewSystemError("result iteration failed", err)
	}

	return declarations, nil
}

// MarkApplied records the apply outcome for a declaration.
func (r *MySQLRepository) MarkApplied(ctx context.Context, id int, success bool) error {
	applied := 0
	if success {
		applied = 1
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE interface_declaration SET applied = ?, last_error = NULL WHERE id = ?`, applied, id)
	if err != nil {
		return errors.NewSystemError("failed to update declaration status", err)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		r.logger.WithField("declaration_id", id).Warn("declaration row vanished before status update")
	}

	return nil
}

// Ping checks database connectivity.
func (r *MySQLRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return errors.NewSystemError("database ping failed", err)
	}
	return nil
}
