package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/ohada_ledger/internal/core/validation"
	"github.com/SscSPs/ohada_ledger/internal/dto"
	"github.com/spf13/cobra"
)

// errEntryRejected makes the command exit non-zero once the report is printed.
var errEntryRejected = errors.New("entry rejected")

type checkReport struct {
	Valid  bool                        `json:"valid"`
	Entry  *dto.EntryResponse          `json:"entry,omitempty"`
	Errors validation.ValidationErrors `json:"errors,omitempty"`
}

func newCheckEntryCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "check-entry",
		Short: "Validate an entry JSON document without a database",
		Long: "Runs the structural and balance rules on an entry and prints the result as JSON.\n" +
			"Account existence and closed periods are not checked offline.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return checkEntry(in, cmd.OutOrStdout(), validation.New())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "entry JSON file, stdin when empty or -")
	return cmd
}

func checkEntry(in io.Reader, out io.Writer, v *validation.Validator) error {
	var req dto.CreateEntryRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("invalid entry document: %w", err)
	}

	report := checkReport{}
	entry, err := v.ValidateEntry(&req)
	if err != nil {
		verrs, ok := validation.AsValidationErrors(err)
		if !ok {
			return err
		}
		report.Errors = verrs
	} else {
		report.Valid = true
		res := dto.ToEntryResponse(entry)
		report.Entry = &res
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if !report.Valid {
		return errEntryRejected
	}
	return nil
}
