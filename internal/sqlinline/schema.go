package sqlinline

const QCreateCausesTable = `--sql 9bede612-2bab-4869-9784-eb6949de0df4
create table if not exists causes (
	id text primary key,
	title text not null,
	description text not null,
	image_url text not null,
	created_at timestamptz not null default now()
);
`

const QCreateContributionsTable = `--sql 5a5fd07a-7635-42d7-b15e-e1c1d23b9d80
create table if not exists contributions (
	id text primary key,
	cause_id text not null,
	cause_donated_to text not null,
	name text not null,
	email text not null,
	amount bigint not null,
	created_at timestamptz not null default now()
);
create index if not exists contributions_cause_id_idx on contributions (cause_id);
`
