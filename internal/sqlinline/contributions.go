package sqlinline

const QInsertContribution = `--sql 79e91a63-a282-4723-afa2-66d571858ac7
insert into contributions(id, cause_id, cause_donated_to, name, email, amount, created_at)
values ($1::text, $2::text, $3::text, $4::text, $5::text, $6::bigint, $7::timestamptz);
`

const QListContributionsByCause = `--sql 016a621e-c0ee-461f-897e-d5ac71dec0b6
select id, cause_id, cause_donated_to, name, email, amount, created_at
from contributions
where cause_id = $1::text
order by created_at, id;
`
