/*
Package protection finds sensitive values in named dataset columns and masks or tokenizes them.

# Architecture

  - domain: run inputs, results and per-column reports
  - service: PatternClassifier (cell classification) and Masker
  - usecase: FieldProcessor (per-column transform application) and PipelineUseCase

# Pipeline

A run reads one table and produces two views of it:

	raw -> clone -> FieldProcessor(mask)     -> masked table
	raw -> clone -> FieldProcessor(tokenize) -> tokenized table

Masking is irreversible and length preserving. Tokenization uses the key obtained from the
key store, created on first use, so a later Restore with the same key recovers the values.

Only cells whose content matches a sensitive pattern are transformed. Columns missing from
the table and cells whose transform fails are reported as warnings; the run continues and
Result.HasWarnings tells partial success apart from a clean run. Key store failures abort
the run.
*/
package protection
